package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/compagent/platform/internal/config"
)

func TestVectorConfigDefaults(t *testing.T) {
	cfg := config.VectorConfig{User: "app"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "localhost" || cfg.Port != 5432 || cfg.Name != "compagent" {
		t.Errorf("defaults = %s:%d/%s, want localhost:5432/compagent", cfg.Host, cfg.Port, cfg.Name)
	}
	if cfg.Dimensions != 1536 {
		t.Errorf("Dimensions = %d, want 1536", cfg.Dimensions)
	}
	if cfg.ConnTimeoutDuration() != 5*time.Second {
		t.Errorf("ConnTimeoutDuration() = %v, want 5s", cfg.ConnTimeoutDuration())
	}
}

func TestVectorConfigEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvVectorHost, "db.internal")
	t.Setenv(config.EnvVectorPort, "6432")
	t.Setenv(config.EnvVectorPassword, "s3cret")

	cfg := config.VectorConfig{User: "app"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "db.internal" || cfg.Port != 6432 {
		t.Errorf("host:port = %s:%d, want db.internal:6432", cfg.Host, cfg.Port)
	}
	if !strings.Contains(cfg.Dsn(), "password=s3cret") {
		t.Errorf("Dsn() missing env password: %q", cfg.Dsn())
	}
}

func TestVectorConfigURL(t *testing.T) {
	cfg := config.VectorConfig{
		Host:     "localhost",
		Port:     5432,
		Name:     "compagent",
		User:     "app",
		Password: "p@ss/word",
	}

	url := cfg.URL()
	if !strings.HasPrefix(url, "postgres://") {
		t.Errorf("URL() = %q, want postgres:// scheme", url)
	}
	if strings.Contains(url, "p@ss/word") {
		t.Errorf("URL() = %q, want escaped password", url)
	}
}

func TestLLMConfigRequiresKey(t *testing.T) {
	t.Setenv(config.EnvLLMAPIKey, "")

	cfg := config.LLMConfig{}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() error = nil, want missing key failure")
	}
}

func TestLLMConfigFromEnv(t *testing.T) {
	t.Setenv(config.EnvLLMAPIKey, "sk-test")
	t.Setenv(config.EnvLLMModel, "llama-3.3-70b-versatile")

	cfg := config.LLMConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.APIKey() != "sk-test" {
		t.Errorf("APIKey() = %q, want sk-test", cfg.APIKey())
	}
	if cfg.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Model = %q, want env override", cfg.Model)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %q, want default", cfg.EmbeddingModel)
	}
}

func TestStorageConfigUploadSize(t *testing.T) {
	cfg := config.StorageConfig{MaxUploadSize: "5MB"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.MaxUploadSizeBytes() != 5_000_000 {
		t.Errorf("MaxUploadSizeBytes() = %d, want 5000000", cfg.MaxUploadSizeBytes())
	}

	bad := config.StorageConfig{MaxUploadSize: "lots"}
	if err := bad.Finalize(); err == nil {
		t.Error("Finalize() error = nil, want invalid size failure")
	}
}

func TestTrackerConfigured(t *testing.T) {
	cfg := config.TrackerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.Configured() {
		t.Error("Configured() = true for empty settings")
	}
	if cfg.Project != "COMP" {
		t.Errorf("Project = %q, want COMP default", cfg.Project)
	}

	t.Setenv(config.EnvTrackerServer, "https://tracker.example.com")
	t.Setenv(config.EnvTrackerEmail, "bot@example.com")
	t.Setenv(config.EnvTrackerAPIToken, "token")

	cfg = config.TrackerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if !cfg.Configured() {
		t.Error("Configured() = false with full env settings")
	}
	if cfg.APIToken() != "token" {
		t.Errorf("APIToken() = %q, want token", cfg.APIToken())
	}
}

func TestConfigMerge(t *testing.T) {
	base := &config.Config{
		ShutdownTimeout: "30s",
		Vector:          config.VectorConfig{Host: "localhost", Port: 5432},
		LLM:             config.LLMConfig{Model: "llama-3.1-8b-instant"},
	}
	overlay := &config.Config{
		ShutdownTimeout: "10s",
		Vector:          config.VectorConfig{Host: "db.staging.internal"},
	}

	base.Merge(overlay)

	if base.ShutdownTimeout != "10s" {
		t.Errorf("ShutdownTimeout = %q, want 10s", base.ShutdownTimeout)
	}
	if base.Vector.Host != "db.staging.internal" {
		t.Errorf("Vector.Host = %q, want overlay value", base.Vector.Host)
	}
	if base.Vector.Port != 5432 {
		t.Errorf("Vector.Port = %d, want base value preserved", base.Vector.Port)
	}
	if base.LLM.Model != "llama-3.1-8b-instant" {
		t.Errorf("LLM.Model = %q, want base value preserved", base.LLM.Model)
	}
}

func TestShutdownTimeoutValidation(t *testing.T) {
	cfg := &config.Config{ShutdownTimeout: "soon"}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() error = nil, want invalid duration failure")
	}
}
