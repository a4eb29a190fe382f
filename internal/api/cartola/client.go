package cartola

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/omarshaarawi/cartolabot/internal/config"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	endpoints  Endpoints
	Config     config.CartolaAPI

	playersMu sync.Mutex
	players   *PlayerTable
}

func NewClient(cfg config.CartolaAPI, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.Default(),
		Config:     cfg,
	}
	for _, o := range opts {
		o(c)
	}
	c.endpoints = newEndpoints(c.Config.BaseURL)

	return c
}

func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// FetchJSON performs a GET against endpoint and decodes the JSON body into
// result. Only a 200 response is considered a success.
func (c *Client) FetchJSON(ctx context.Context, endpoint string, result any) error {
	if endpoint == "" {
		return fmt.Errorf("%w: no endpoint passed", ErrInvalidArgument)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: error creating request: %v", ErrInvalidArgument, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return &UpstreamError{StatusCode: resp.StatusCode, URL: endpoint}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &DecodeError{URL: endpoint, Err: err}
	}

	return nil
}

// Fetch is FetchJSON into a generic value: map[string]any for objects and
// []any for arrays.
func (c *Client) Fetch(ctx context.Context, endpoint string) (any, error) {
	var result any
	if err := c.FetchJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return result, nil
}
