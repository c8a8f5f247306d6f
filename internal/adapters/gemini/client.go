// Package gemini wraps the optional Google generative client. The monitor never
// sends it prompts; its presence is only surfaced through the health check.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// ErrMissingAPIKey is returned when no API key is configured
var ErrMissingAPIKey = errors.New("gemini API key is not configured")

// Client holds an initialised Gemini client and model handle
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	logger    *zap.Logger
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Google generative client initialised", zap.String("model", modelName))

	return &Client{
		client:    client,
		model:     client.GenerativeModel(modelName),
		modelName: modelName,
		logger:    logger,
	}, nil
}

// Available reports true once the client has been constructed
func (c *Client) Available() bool {
	return c.client != nil && c.model != nil
}

// ModelName returns the configured model
func (c *Client) ModelName() string {
	return c.modelName
}

// Close closes the Gemini client
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Unavailable is the status reported when the client could not be built
type Unavailable struct {
	Reason error
}

// Available always reports false
func (u Unavailable) Available() bool {
	return false
}
