package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the endpoint configuration, loaded from the environment.
type Config struct {
	Endpoint string        `env:"QUOTE_ENDPOINT" envDefault:"https://www.surmesure.fr/api/devis"`
	Timeout  time.Duration `env:"QUOTE_TIMEOUT" envDefault:"15s"`
}

// ConfigFromEnv loads the endpoint configuration from environment
// variables, falling back to the defaults.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse quote env: %w", err)
	}
	return cfg, nil
}

// ErrConnectivity wraps transport-level failures. The UI shows a generic
// retry message for these instead of the raw error.
var ErrConnectivity = errors.New("le serveur de devis est injoignable")

// ServerError is a rejection from the quote endpoint, carrying the
// server-provided message for display.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("le serveur a refusé la demande (HTTP %d)", e.Status)
}

// Client submits quote requests.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient builds a client from the endpoint configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		http:     &http.Client{Timeout: cfg.Timeout},
	}
}

// Submit posts the quote request. A non-2xx response surfaces the
// server's error message; a transport failure surfaces ErrConnectivity.
// Either way the caller's configuration state is untouched and the
// submission can be retried.
func (c *Client) Submit(ctx context.Context, req Request) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode quote request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build quote request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil {
		msg = payload.Error
		if msg == "" {
			msg = payload.Message
		}
	}
	return &ServerError{Status: resp.StatusCode, Message: msg}
}
