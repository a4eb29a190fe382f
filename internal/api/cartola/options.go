package cartola

import (
	"log/slog"
	"net/http"
)

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithBaseURL(u string) Option {
	return func(c *Client) { c.Config.BaseURL = u }
}
