package httpjson

import (
	"log/slog"
	"net/http"
	"time"
)

type Config struct {
	// Endpoint is the full URL of the api.json.tlx endpoint.
	Endpoint string

	// Client is the HTTP client used for all requests. http.DefaultClient
	// when nil. Connection pooling and TLS configuration are entirely its
	// concern.
	Client *http.Client

	// RequestTimeout bounds one round trip, on top of whatever deadline the
	// caller's context already carries.
	RequestTimeout time.Duration

	Logger *slog.Logger
}

func (c *Config) Defaults() {
	if c.Client == nil {
		c.Client = http.DefaultClient
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
