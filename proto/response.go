package proto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	ActionOK       = "OK"
	ActionAPIError = "API_ERROR"
)

// ResultStatus is the result block carried by every non-null response body.
type ResultStatus struct {
	Action string `json:"action"`
	API    string `json:"api"`
	Debug  string `json:"debug,omitempty"`
}

// Response is a decoded API response.
//
// Body holds the complete decoded JSON value. Numbers decode as json.Number
// so large asset ids survive unclipped. Some methods, such as adding files
// to an asynchronous upload, legitimately return a JSON null body; Body is
// nil in that case.
type Response struct {
	Body any
}

// ParseResponse decodes a raw response body.
func ParseResponse(raw []byte) (*Response, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &Response{Body: body}, nil
}

// Status extracts the result block, nil when the body carries none.
func (r *Response) Status() *ResultStatus {
	obj, ok := r.Body.(map[string]any)
	if !ok {
		return nil
	}
	res, ok := obj["result"].(map[string]any)
	if !ok {
		return nil
	}

	st := &ResultStatus{}
	if v, ok := res["action"].(string); ok {
		st.Action = v
	}
	if v, ok := res["api"].(string); ok {
		st.API = v
	}
	if v, ok := res["debug"].(string); ok {
		st.Debug = v
	}
	return st
}

// Err returns the APIError the response reports, or nil on success. Null
// bodies count as success.
func (r *Response) Err() error {
	st := r.Status()
	if st == nil || st.Action != ActionAPIError {
		return nil
	}
	return &APIError{Action: st.Action, API: st.API, Debug: st.Debug}
}

// Ok reports whether the response carries no API error.
func (r *Response) Ok() bool {
	return r.Err() == nil
}
