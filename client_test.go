package thirdlight

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rethought/thirdlight-go/proto"
	"github.com/rethought/thirdlight-go/transport/httpjson"
	"github.com/stretchr/testify/require"
)

func TestEndpointURL(t *testing.T) {
	require.Equal(t, "http://url.com/api.json.tlx", New("http://url.com", "1234").APIURL())
	require.Equal(t, "http://url.com/api.json.tlx", New("http://url.com/", "1234").APIURL())
}

func TestCallRequiresConnect(t *testing.T) {
	f := newFakeIMS(t)
	c := f.client()

	_, err := c.Call(context.Background(), "Files.GetAssetDetails", Params{"assetId": "123"})
	require.ErrorIs(t, err, ErrNotConnected)
	require.Zero(t, f.total(), "precondition check must not touch the network")
}

func TestConnect(t *testing.T) {
	f := newFakeIMS(t)
	f.loginOK("sess-1")
	f.handle("Files.GetAssetDetails", func(call fakeCall) any {
		require.Equal(t, "sess-1", call.SessionID, "session id attached after login")
		return okBody(map[string]any{"panoramicUrl": "http://x/y.jpg"})
	})

	c := f.client()
	require.False(t, c.Connected())

	require.NoError(t, c.Connect(context.Background()))
	require.True(t, c.Connected())

	// login itself must carry the api key but no session id
	f.mu.Lock()
	login := f.calls[0]
	f.mu.Unlock()
	require.Equal(t, "Core.LoginWithKey", login.Action)
	require.Empty(t, login.SessionID)
	require.Equal(t, "key-123", login.InParams["apikey"])

	res, err := c.Call(context.Background(), "Files_GetAssetDetails", Params{"assetId": "123"})
	require.NoError(t, err)

	u, err := res.Field("panoramicUrl")
	require.NoError(t, err)
	s, err := u.Str()
	require.NoError(t, err)
	require.Equal(t, "http://x/y.jpg", s)
}

func TestConnectRejectedKey(t *testing.T) {
	f := newFakeIMS(t)
	f.handle("Core.LoginWithKey", func(call fakeCall) any {
		return apiErrorBody("INVALID_API_KEY")
	})

	c := f.client()
	err := c.Connect(context.Background())
	require.Error(t, err)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))

	var apiErr *proto.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "INVALID_API_KEY", apiErr.API)

	require.False(t, c.Connected(), "connected must stay false on auth failure")
}

func TestConnectUnreachable(t *testing.T) {
	f := newFakeIMS(t)
	f.srv.Close()

	c := f.client()
	err := c.Connect(context.Background())
	require.Error(t, err)

	var te *httpjson.TransportError
	require.True(t, errors.As(err, &te))
	require.False(t, c.Connected())
}

func TestCallDispatch(t *testing.T) {
	f := newFakeIMS(t)
	f.loginOK("sess-1")

	params := Params{
		"assetId": "123",
		"count":   7,
		"flags":   map[string]any{"panoramic": true},
		"tags":    []any{"a", "b"},
	}
	f.handle("Files.GetAssetDetails", func(call fakeCall) any {
		require.Equal(t, map[string]any{
			"assetId": "123",
			"count":   json.Number("7"),
			"flags":   map[string]any{"panoramic": true},
			"tags":    []any{"a", "b"},
		}, call.InParams, "params arrive losslessly")
		return okBody(nil)
	})

	c := f.connectedClient()

	// underscore form translates to Module.Method on the wire
	_, err := c.Call(context.Background(), "Files_GetAssetDetails", params)
	require.NoError(t, err)
	require.Equal(t, []string{"Core.LoginWithKey", "Files.GetAssetDetails"}, f.actions())
}

func TestCallInvalidAction(t *testing.T) {
	f := newFakeIMS(t)
	f.loginOK("sess-1")
	c := f.connectedClient()

	for _, name := range []string{"blah", "users_blah", "Users_Blah_"} {
		_, err := c.Call(context.Background(), name, nil)
		require.Error(t, err, name)
	}
	require.Equal(t, 1, f.total(), "only the login reached the service")
}

func TestCallAPIError(t *testing.T) {
	f := newFakeIMS(t)
	f.loginOK("sess-1")
	f.handle("Files.GetAssetDetails", func(call fakeCall) any {
		return apiErrorBody("ASSET_NOT_FOUND")
	})

	c := f.connectedClient()

	_, err := c.Call(context.Background(), "Files.GetAssetDetails", Params{"assetId": "nope"})
	require.Error(t, err)

	var apiErr *proto.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "ASSET_NOT_FOUND", apiErr.API)
}

func TestCallNullBody(t *testing.T) {
	f := newFakeIMS(t)
	f.loginOK("sess-1")
	f.handle("Upload.AddFilesToUpload", func(call fakeCall) any {
		return nil // some async methods answer with a literal null
	})

	c := f.connectedClient()

	res, err := c.Call(context.Background(), "Upload.AddFilesToUpload", Params{"uploadKey": "k"})
	require.NoError(t, err)
	require.True(t, res.IsNull())
}

func TestWithTransport(t *testing.T) {
	called := false
	c := New("http://url.com", "1234", WithTransport(transportFunc(func(ctx context.Context, req *proto.Request) (*proto.Response, error) {
		called = true
		require.Equal(t, "Core.LoginWithKey", req.Action)
		return proto.ParseResponse([]byte(`{"result":{"action":"OK","api":"OK"},"outParams":{"sessionId":"s"}}`))
	})))

	require.NoError(t, c.Connect(context.Background()))
	require.True(t, called)
}

type transportFunc func(ctx context.Context, req *proto.Request) (*proto.Response, error)

func (f transportFunc) Do(ctx context.Context, req *proto.Request) (*proto.Response, error) {
	return f(ctx, req)
}
