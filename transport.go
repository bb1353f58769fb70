package thirdlight

import (
	"context"

	"github.com/rethought/thirdlight-go/proto"
)

// Transport submits a single API request envelope and returns the decoded
// response. Implementations never retry; every failure surfaces to the
// caller unchanged. transport/httpjson provides the standard HTTP POST
// implementation.
type Transport interface {
	Do(ctx context.Context, req *proto.Request) (*proto.Response, error)
}
