// Package thirdlight is a client for the ThirdLight Image Management System
// JSON API.
//
// Every remote method the ThirdLight documentation lists as Module.Method is
// reachable through one generic facade:
//
//	tl := thirdlight.New("https://acme.thirdlight.com", apiKey)
//	if err := tl.Connect(ctx); err != nil {
//		// ...
//	}
//	res, err := tl.Call(ctx, "Files.GetAssetDetails", thirdlight.Params{"assetId": "123"})
//
// The underscore form many ThirdLight code samples use
// (Files_GetAssetDetails) is accepted as well. Responses come back as
// result.Value trees with explicit accessors and the outParams fall-through
// the API leans on, so res.Field("panoramicUrl") finds
// outParams.panoramicUrl.
//
// On top of the facade the client provides composed convenience operations:
// UploadImage and the folder tree helpers it builds on.
//
// A Client is not safe for concurrent dispatch. Use one client per worker or
// serialize calls externally.
package thirdlight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/rethought/thirdlight-go/proto"
	"github.com/rethought/thirdlight-go/result"
	"github.com/rethought/thirdlight-go/transport/httpjson"
)

// apiEndpoint is appended to the account base URL,
// e.g. https://acme.thirdlight.com/api.json.tlx
const apiEndpoint = "api.json.tlx"

// Actions behind Connect and the composed convenience operations.
var (
	actionLogin            = proto.Action{Module: "Core", Method: "LoginWithKey"}
	actionCreateUpload     = proto.Action{Module: "Upload", Method: "CreateUpload"}
	actionAddFilesToUpload = proto.Action{Module: "Upload", Method: "AddFilesToUpload"}
	actionStartUpload      = proto.Action{Module: "Upload", Method: "StartUpload"}
	actionCompleteUpload   = proto.Action{Module: "Upload", Method: "CompleteUpload"}
	actionUploadProgress   = proto.Action{Module: "Upload", Method: "GetUploadProgress"}
	actionTopLevelFolders  = proto.Action{Module: "Folders", Method: "GetTopLevelFolders"}
	actionChildrenOfFolder = proto.Action{Module: "Folders", Method: "GetContainersForParent"}
)

// Params holds the inParams of one API call. Values may be arbitrarily
// nested JSON-serializable data.
type Params map[string]any

// Client talks to one ThirdLight account.
type Client struct {
	apiURL    string
	apiKey    string
	transport Transport
	logger    *slog.Logger

	mu        sync.Mutex
	sessionID string
	folders   map[string]string // folder path -> folder id, loaded lazily
}

var _ Transport = (*httpjson.Transport)(nil)

// New creates a client for the account at baseURL, typically of the form
// https://<account>.thirdlight.com. No network access happens until
// Connect.
func New(baseURL, apiKey string, opts ...Option) *Client {
	o := &clientOptions{}
	withOptions(withDefaults(), withOptions(opts...))(o)

	apiURL := strings.TrimRight(baseURL, "/") + "/" + apiEndpoint

	tr := o.transport
	if tr == nil {
		tr = httpjson.New(httpjson.Config{
			Endpoint:       apiURL,
			Client:         o.httpClient,
			RequestTimeout: o.requestTimeout,
			Logger:         o.logger,
		})
	}

	return &Client{
		apiURL:    apiURL,
		apiKey:    apiKey,
		transport: tr,
		logger: o.logger.With(
			slog.String("component", "thirdlight"),
		),
	}
}

// APIURL returns the resolved api.json.tlx endpoint URL.
func (c *Client) APIURL() string {
	return c.apiURL
}

// Connected reports whether Connect has succeeded.
func (c *Client) Connected() bool {
	return c.session() != ""
}

func (c *Client) session() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Connect validates the API key against the service via Core.LoginWithKey
// and stores the session id attached to every subsequent call. A rejected
// key yields an *AuthError; an unreachable service surfaces the transport
// failure.
func (c *Client) Connect(ctx context.Context) error {
	res, err := c.call(ctx, actionLogin, Params{"apikey": c.apiKey})
	if err != nil {
		var apiErr *proto.APIError
		if errors.As(err, &apiErr) {
			return &AuthError{cause: apiErr}
		}
		return err
	}

	sidv, err := res.Field("sessionId")
	if err != nil {
		return fmt.Errorf("login response: %w", err)
	}
	sid, err := sidv.Str()
	if err != nil {
		return fmt.Errorf("login response: %w", err)
	}

	c.mu.Lock()
	c.sessionID = sid
	c.mu.Unlock()

	return nil
}

// Call invokes a remote API method. The action accepts both the dotted form
// (Files.GetAssetDetails) and the underscore form (Files_GetAssetDetails);
// invalid names fail before any network access, as does calling before
// Connect.
//
// A structured error from the service is returned as *proto.APIError;
// transport failures keep their transport error type. Methods that return a
// JSON null body yield a null Value without error.
func (c *Client) Call(ctx context.Context, action string, params Params) (result.Value, error) {
	a, err := proto.ParseAction(action)
	if err != nil {
		return result.Value{}, err
	}
	if !c.Connected() {
		return result.Value{}, ErrNotConnected
	}
	return c.call(ctx, a, params)
}

// call performs one dispatched request. Connect uses it directly, bypassing
// the connected precondition.
func (c *Client) call(ctx context.Context, a proto.Action, params Params) (result.Value, error) {
	req := proto.NewRequest(a, params)
	req.SessionID = c.session()

	callID := proto.ID()

	// params never end up in logs: they may carry credentials or whole
	// file payloads
	log := c.logger.With(
		slog.String("call_id", callID),
		slog.String("action", a.String()),
	)
	if name, ok := uploadFileName(params); ok {
		log.Info("executing file upload", slog.String("file", name))
	} else {
		log.Info("executing request")
	}

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return result.Value{}, fmt.Errorf("call %s [id=%s]: %w", a, callID, err)
	}
	if rerr := resp.Err(); rerr != nil {
		return result.Value{}, fmt.Errorf("call %s [id=%s]: %w", a, callID, rerr)
	}

	return result.Wrap(resp.Body), nil
}

// uploadFileName digs the file name out of an AddFilesToUpload payload.
func uploadFileName(params Params) (string, bool) {
	fd, ok := params["fileData"].(map[string]any)
	if !ok {
		return "", false
	}
	uf, ok := fd["upload_file"].(map[string]any)
	if !ok {
		return "", false
	}
	name, ok := uf["name"].(string)
	return name, ok
}
