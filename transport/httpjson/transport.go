// Package httpjson carries ThirdLight API calls over HTTP. Each call is one
// POST of the JSON request envelope to the api.json.tlx endpoint; the
// response body is decoded JSON. There is no retrying and no connection
// management beyond what the configured http.Client does.
package httpjson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/rethought/thirdlight-go/proto"
)

// Transport submits request envelopes over HTTP POST.
type Transport struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a transport for the given endpoint.
func New(cfg Config) *Transport {
	cfg.Defaults()
	return &Transport{
		cfg: cfg,
		logger: cfg.Logger.With(
			slog.String("transport", "httpjson"),
			slog.String("endpoint", cfg.Endpoint),
		),
	}
}

// Do performs one request round trip.
func (t *Transport) Do(ctx context.Context, req *proto.Request) (*proto.Response, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, t.cfg.RequestTimeout)
	defer cancel()

	hr, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	hr.Header.Set("Content-Type", "application/json")

	t.logger.Debug("POST",
		slog.String("action", req.Action),
		slog.Int("bytes", len(data)),
	)

	res, err := t.cfg.Client.Do(hr)
	if err != nil {
		return nil, &TransportError{cause: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{cause: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &TransportError{
			StatusCode: res.StatusCode,
			cause:      fmt.Errorf("server said: %s", snippet(body)),
		}
	}

	return proto.ParseResponse(body)
}

// snippet keeps error messages readable when the server dumps an HTML error
// page at us.
func snippet(body []byte) string {
	const max = 200
	s := string(bytes.TrimSpace(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
