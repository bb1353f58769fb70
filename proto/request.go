package proto

// Request is the envelope POSTed to the api.json.tlx endpoint. Every call
// uses POST regardless of payload size, which is what file uploads need
// anyway. SessionID is empty until a session has been established.
type Request struct {
	SessionID  string         `json:"sessionId,omitempty"`
	Action     string         `json:"action"`
	InParams   map[string]any `json:"inParams"`
	APIVersion string         `json:"apiVersion"`
}

// NewRequest creates a request envelope for an action. A nil params map is
// sent as an empty inParams object.
func NewRequest(action Action, inParams map[string]any) *Request {
	if inParams == nil {
		inParams = map[string]any{}
	}
	return &Request{
		Action:     action.String(),
		InParams:   inParams,
		APIVersion: Version,
	}
}
