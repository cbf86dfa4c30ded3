package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	// EnvVectorHost overrides the vector database host address.
	EnvVectorHost = "VECTOR_DATABASE_HOST"

	// EnvVectorPort overrides the vector database port.
	EnvVectorPort = "VECTOR_DATABASE_PORT"

	// EnvVectorName overrides the vector database name.
	EnvVectorName = "VECTOR_DATABASE_NAME"

	// EnvVectorUser overrides the vector database user.
	EnvVectorUser = "VECTOR_DATABASE_USER"

	// EnvVectorPassword overrides the vector database password.
	EnvVectorPassword = "VECTOR_DATABASE_PASSWORD"

	// EnvVectorMaxOpenConns overrides the maximum number of open connections.
	EnvVectorMaxOpenConns = "VECTOR_DATABASE_MAX_OPEN_CONNS"

	// EnvVectorMaxIdleConns overrides the maximum number of idle connections.
	EnvVectorMaxIdleConns = "VECTOR_DATABASE_MAX_IDLE_CONNS"

	// EnvVectorConnTimeout overrides the connection timeout.
	EnvVectorConnTimeout = "VECTOR_DATABASE_CONN_TIMEOUT"

	// EnvVectorDimensions overrides the embedding vector width.
	EnvVectorDimensions = "VECTOR_EMBEDDING_DIMENSIONS"
)

// VectorConfig contains connection settings for the Postgres/pgvector
// similarity-search backend.
type VectorConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	Name         string `toml:"name"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	ConnTimeout  string `toml:"conn_timeout"`
	Dimensions   int    `toml:"dimensions"`
}

// Dsn returns the connection string in key/value form for database/sql.
func (c *VectorConfig) Dsn() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
		c.Host, c.Port, c.Name, c.User, c.Password,
	)
}

// URL returns the connection string in postgres:// form for golang-migrate.
func (c *VectorConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.Name,
	)
}

// ConnTimeoutDuration parses and returns the connection timeout as a time.Duration.
func (c *VectorConfig) ConnTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnTimeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *VectorConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *VectorConfig) Merge(overlay *VectorConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
	if overlay.User != "" {
		c.User = overlay.User
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
	if overlay.MaxOpenConns != 0 {
		c.MaxOpenConns = overlay.MaxOpenConns
	}
	if overlay.MaxIdleConns != 0 {
		c.MaxIdleConns = overlay.MaxIdleConns
	}
	if overlay.ConnTimeout != "" {
		c.ConnTimeout = overlay.ConnTimeout
	}
	if overlay.Dimensions != 0 {
		c.Dimensions = overlay.Dimensions
	}
}

func (c *VectorConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.Name == "" {
		c.Name = "compagent"
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 10
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 5
	}
	if c.ConnTimeout == "" {
		c.ConnTimeout = "5s"
	}
	if c.Dimensions == 0 {
		c.Dimensions = 1536
	}
}

func (c *VectorConfig) loadEnv() {
	if v := os.Getenv(EnvVectorHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvVectorPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvVectorName); v != "" {
		c.Name = v
	}
	if v := os.Getenv(EnvVectorUser); v != "" {
		c.User = v
	}
	if v := os.Getenv(EnvVectorPassword); v != "" {
		c.Password = v
	}
	if v := os.Getenv(EnvVectorMaxOpenConns); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxOpenConns = n
		}
	}
	if v := os.Getenv(EnvVectorMaxIdleConns); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxIdleConns = n
		}
	}
	if v := os.Getenv(EnvVectorConnTimeout); v != "" {
		c.ConnTimeout = v
	}
	if v := os.Getenv(EnvVectorDimensions); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Dimensions = n
		}
	}
}

func (c *VectorConfig) validate() error {
	if c.User == "" {
		return fmt.Errorf("user required")
	}
	if c.Dimensions < 1 {
		return fmt.Errorf("dimensions must be positive")
	}
	if _, err := time.ParseDuration(c.ConnTimeout); err != nil {
		return fmt.Errorf("invalid conn_timeout: %w", err)
	}
	return nil
}
