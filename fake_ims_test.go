package thirdlight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rethought/thirdlight-go/proto"
	"github.com/stretchr/testify/require"
)

// fakeIMS is a scripted stand-in for a ThirdLight account: handlers are
// registered per action and every received envelope is recorded.
type fakeIMS struct {
	t   *testing.T
	srv *httptest.Server

	mu       sync.Mutex
	calls    []fakeCall
	handlers map[string]func(call fakeCall) any
}

type fakeCall struct {
	Action    string         `json:"action"`
	SessionID string         `json:"sessionId"`
	InParams  map[string]any `json:"inParams"`
	Version   string         `json:"apiVersion"`
}

func newFakeIMS(t *testing.T) *fakeIMS {
	t.Helper()
	f := &fakeIMS{
		t:        t,
		handlers: map[string]func(fakeCall) any{},
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeIMS) serve(w http.ResponseWriter, r *http.Request) {
	var call fakeCall
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	require.NoError(f.t, dec.Decode(&call))
	require.Equal(f.t, proto.Version, call.Version)

	f.mu.Lock()
	f.calls = append(f.calls, call)
	handler := f.handlers[call.Action]
	f.mu.Unlock()

	var body any
	if handler == nil {
		body = apiErrorBody("ACTION_NOT_SCRIPTED: " + call.Action)
	} else {
		body = handler(call)
	}

	w.Header().Set("Content-Type", "application/json")
	require.NoError(f.t, json.NewEncoder(w).Encode(body))
}

func (f *fakeIMS) handle(action string, h func(call fakeCall) any) {
	f.mu.Lock()
	f.handlers[action] = h
	f.mu.Unlock()
}

// loginOK scripts a successful Core.LoginWithKey.
func (f *fakeIMS) loginOK(sessionID string) {
	f.handle("Core.LoginWithKey", func(call fakeCall) any {
		return okBody(map[string]any{"sessionId": sessionID})
	})
}

func (f *fakeIMS) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Action
	}
	return out
}

func (f *fakeIMS) count(action string) int {
	n := 0
	for _, a := range f.actions() {
		if a == action {
			n++
		}
	}
	return n
}

func (f *fakeIMS) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeIMS) client(opts ...Option) *Client {
	return New(f.srv.URL, "key-123", opts...)
}

func (f *fakeIMS) connectedClient(opts ...Option) *Client {
	f.t.Helper()
	c := f.client(opts...)
	require.NoError(f.t, c.Connect(context.Background()))
	return c
}

func okBody(out map[string]any) map[string]any {
	body := map[string]any{
		"result": map[string]any{"action": "OK", "api": "OK"},
	}
	if out != nil {
		body["outParams"] = out
	}
	return body
}

func apiErrorBody(msg string) map[string]any {
	return map[string]any{
		"result": map[string]any{"action": "API_ERROR", "api": msg},
	}
}
