package proto

import "fmt"

// APIError is the structured error envelope returned when the service
// answers with result.action == "API_ERROR". API carries the remote error
// message, Debug any additional diagnostics the server chose to include.
type APIError struct {
	Action string
	API    string
	Debug  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s", e.API)
}
