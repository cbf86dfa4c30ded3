// Package tracker provides the issue tracker passthrough: task creation and
// connection testing against a Jira-compatible server.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	jira "github.com/andygrunwald/go-jira"

	"github.com/compagent/platform/internal/config"
)

// Task identifies a created issue.
type Task struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Client wraps the tracker API. The underlying connection is built lazily
// on first use so an unconfigured tracker never blocks startup.
type Client struct {
	cfg    *config.TrackerConfig
	logger *slog.Logger

	once sync.Once
	api  *jira.Client
	err  error
}

// New creates a tracker client from configuration.
func New(cfg *config.TrackerConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		logger: logger.With("system", "tracker"),
	}
}

// Configured reports whether the tracker has complete settings.
func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

func (c *Client) connect() (*jira.Client, error) {
	c.once.Do(func() {
		if !c.cfg.Configured() {
			c.err = ErrNotConfigured
			return
		}

		tp := jira.BasicAuthTransport{
			Username: c.cfg.Email,
			Password: c.cfg.APIToken(),
		}

		c.api, c.err = jira.NewClient(tp.Client(), c.cfg.Server)
	})

	return c.api, c.err
}

// CreateTask creates an issue with the given summary text. projectKey and
// issueType fall back to the configured project and "Task".
func (c *Client) CreateTask(ctx context.Context, text, projectKey, issueType string) (*Task, error) {
	api, err := c.connect()
	if err != nil {
		return nil, err
	}

	if projectKey == "" {
		projectKey = c.cfg.Project
	}
	if issueType == "" {
		issueType = "Task"
	}

	issue := &jira.Issue{
		Fields: &jira.IssueFields{
			Project:     jira.Project{Key: projectKey},
			Summary:     text,
			Description: text,
			Type:        jira.IssueType{Name: issueType},
		},
	}

	created, _, err := api.Issue.CreateWithContext(ctx, issue)
	if err != nil {
		return nil, fmt.Errorf("%w: create task: %v", ErrUpstream, err)
	}

	c.logger.Info("tracker task created", "key", created.Key, "project", projectKey)

	return &Task{
		Key: created.Key,
		URL: fmt.Sprintf("%s/browse/%s", c.cfg.Server, created.Key),
	}, nil
}

// TestConnection verifies credentials by fetching the authenticated user.
func (c *Client) TestConnection(ctx context.Context) (string, error) {
	api, err := c.connect()
	if err != nil {
		return "", err
	}

	user, _, err := api.User.GetSelfWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: connection test: %v", ErrUpstream, err)
	}

	return user.EmailAddress, nil
}
