package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"correval/internal/services"
)

const defaultHTTPTimeout = 10 * time.Minute

// Config captures the runtime settings required to talk to the model host.
type Config struct {
	BaseURL        string
	TimeoutSeconds int
	// Device is the execution hint forwarded with every load request.
	Device string
}

// Client wraps the local model host API. The host owns the on-disk model
// serialization format; this client only names a directory and asks for
// generations. There is no retry logic: a failure surfaces immediately.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a model host client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			BaseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
			TimeoutSeconds: cfg.TimeoutSeconds,
			Device:         strings.TrimSpace(cfg.Device),
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: timeout}
	}
	return client
}

// Health verifies the model host is reachable before the first model loads.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/v1/health"), nil)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "inference", "health", "build request", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "inference", "health", "model host unreachable", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return services.Wrap(services.ErrExternalTool, "inference", "health",
			fmt.Sprintf("http %d", resp.StatusCode), nil)
	}
	return nil
}

type loadRequest struct {
	Path   string `json:"path"`
	Device string `json:"device,omitempty"`
}

type loadResponse struct {
	Model string `json:"model"`
	Error string `json:"error,omitempty"`
}

// LoadModel asks the host to load the tokenizer+model pair stored in dir and
// returns the host's model ID. Failures are model-load errors: fatal for the
// directory's evaluation pass.
func (c *Client) LoadModel(ctx context.Context, dir string) (string, error) {
	var out loadResponse
	err := c.post(ctx, "/v1/models", loadRequest{Path: dir, Device: c.cfg.Device}, &out)
	if err != nil {
		return "", services.Wrap(services.ErrModelLoad, "inference", "load model", dir, err)
	}
	if strings.TrimSpace(out.Model) == "" {
		return "", services.Wrap(services.ErrModelLoad, "inference", "load model", dir,
			errors.New("host returned no model id"))
	}
	return out.Model, nil
}

// UnloadModel releases a loaded model. Best effort; callers log failures and
// move on.
func (c *Client) UnloadModel(ctx context.Context, model string) error {
	target := c.endpoint("/v1/models/" + url.PathEscape(model))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, target, nil)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "inference", "unload model", model, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "inference", "unload model", model, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		return services.Wrap(services.ErrExternalTool, "inference", "unload model",
			fmt.Sprintf("%s: http %d", model, resp.StatusCode), nil)
	}
	return nil
}

type generateRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
	// MaxInputTokens bounds tokenization (truncation and padding) and
	// MaxNewTokens bounds the generated sequence; the pipeline sets both
	// to the model's max generation length.
	MaxInputTokens int `json:"max_input_tokens"`
	MaxNewTokens   int `json:"max_new_tokens"`
}

type generateResponse struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

// Generate produces the corrected text for one input. The host decodes the
// generated token sequence with special tokens stripped.
func (c *Client) Generate(ctx context.Context, model, input string, maxLength int) (string, error) {
	payload := generateRequest{
		Model:          model,
		Input:          input,
		MaxInputTokens: maxLength,
		MaxNewTokens:   maxLength,
	}
	var out generateResponse
	if err := c.post(ctx, "/v1/generate", payload, &out); err != nil {
		return "", services.Wrap(services.ErrExternalTool, "inference", "generate", model, err)
	}
	return out.Output, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http error (timeout=%s): %w", c.timeoutDuration(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("http %d: %s", resp.StatusCode, errorSnippet(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) endpoint(path string) string {
	return c.cfg.BaseURL + path
}

func (c *Client) timeoutDuration() time.Duration {
	if c.cfg.TimeoutSeconds > 0 {
		return time.Duration(c.cfg.TimeoutSeconds) * time.Second
	}
	return defaultHTTPTimeout
}

// errorSnippet extracts the host's error message when the body carries one,
// falling back to a trimmed raw snippet.
func errorSnippet(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Error) != "" {
		return strings.TrimSpace(payload.Error)
	}
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > 200 {
		snippet = snippet[:200] + "..."
	}
	if snippet == "" {
		snippet = "(empty body)"
	}
	return snippet
}
