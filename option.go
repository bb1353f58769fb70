package thirdlight

import (
	"log/slog"
	"net/http"
	"time"
)

type clientOptions struct {
	logger         *slog.Logger
	httpClient     *http.Client
	transport      Transport
	requestTimeout time.Duration
}

type Option func(opts *clientOptions)

func withDefaults() Option {
	return withOptions(
		WithLogger(slog.Default()),
		WithRequestTimeout(30*time.Second),
	)
}

func withOptions(os ...Option) Option {
	return func(opts *clientOptions) {
		for _, o := range os {
			o(opts)
		}
	}
}

// WithLogger sets the logger used for per-call log lines.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *clientOptions) {
		opts.logger = logger
	}
}

// WithRequestTimeout bounds a single API round trip.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(opts *clientOptions) {
		opts.requestTimeout = timeout
	}
}

// WithHTTPClient sets the http.Client the default transport uses. Ignored
// when WithTransport is given.
func WithHTTPClient(hc *http.Client) Option {
	return func(opts *clientOptions) {
		opts.httpClient = hc
	}
}

// WithTransport replaces the HTTP transport entirely, mostly useful for
// tests.
func WithTransport(t Transport) Option {
	return func(opts *clientOptions) {
		opts.transport = t
	}
}
