// Package proto holds the wire types of the ThirdLight JSON API: the
// request envelope POSTed to api.json.tlx, the decoded response body and
// the structured error the service reports inside it.
package proto

import gonanoid "github.com/matoous/go-nanoid/v2"

// Version is the API dialect spoken by this client.
const Version = "1.0"

// ID returns a short unique id used to correlate the log lines of one call.
func ID() string {
	id, _ := gonanoid.New()
	return id
}
