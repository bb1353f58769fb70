package thirdlight

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rethought/thirdlight-go/result"
)

// AssetRef is the opaque reference the IMS hands back for an uploaded file.
// The client never interprets it, it is only forwarded into later calls
// such as Files.GetAssetDetails.
type AssetRef string

// UploadOptions configure UploadImage.
type UploadOptions struct {
	// FolderID is the destination folder id. When empty, FolderPath is
	// resolved through the folder tree instead.
	FolderID string

	// FolderPath is a UNIX style destination path, e.g. /beaches/broome.
	FolderPath string

	Caption  string
	Keywords []string

	// NoBlock returns right after Upload.StartUpload with the upload key
	// instead of waiting for completion. The caller then polls
	// UploadProgress and finishes with Upload.CompleteUpload itself.
	NoBlock bool

	// Lifetime of the created upload entry in seconds. Defaults to 60.
	Lifetime int
}

// UploadImage uploads the file at source, composed out of the service's
// upload sequence: Upload.CreateUpload, Upload.AddFilesToUpload (base64
// payload), Upload.StartUpload and, when blocking, Upload.CompleteUpload.
//
// In blocking mode (the default) the returned AssetRef is the IMS client
// reference of the uploaded file. With NoBlock it is the upload key.
//
// A failure after the upload entry was created yields an *UploadError; the
// remote entry is not rolled back.
//
// Note on duplicates: the IMS deduplicates aggressively. A file that exists
// anywhere in the library, the trash can included, lands in the approval
// queue instead of the destination folder.
func (c *Client) UploadImage(ctx context.Context, source string, opts UploadOptions) (AssetRef, error) {
	if !c.Connected() {
		return "", ErrNotConnected
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("read source file: %w", err)
	}

	folderID := opts.FolderID
	if folderID == "" {
		folderID, err = c.ResolveFolderID(ctx, opts.FolderPath)
		if err != nil {
			return "", err
		}
	}

	lifetime := opts.Lifetime
	if lifetime == 0 {
		lifetime = 60
	}

	res, err := c.call(ctx, actionCreateUpload, Params{
		"params": map[string]any{
			"destination": folderID,
			"synchronous": false,
			"lifetime":    lifetime,
		},
	})
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	key, err := stringField(res, "uploadKey")
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	c.logger.Info("uploading file",
		slog.String("file", source),
		slog.Int("encoded_bytes", len(encoded)),
	)

	keywords := opts.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	fileData := map[string]any{
		"upload_file": map[string]any{
			"encoding": "base64",
			"name":     filepath.Base(source),
			"data":     encoded,
			"metadata": map[string]any{
				"caption":  opts.Caption,
				"keywords": keywords,
			},
		},
	}

	if _, err := c.call(ctx, actionAddFilesToUpload, Params{"uploadKey": key, "fileData": fileData}); err != nil {
		return "", &UploadError{Source: source, Step: actionAddFilesToUpload.String(), Key: key, cause: err}
	}

	report, err := c.call(ctx, actionStartUpload, Params{"uploadKey": key, "blocking": !opts.NoBlock})
	if err != nil {
		return "", &UploadError{Source: source, Step: actionStartUpload.String(), Key: key, cause: err}
	}

	if opts.NoBlock {
		return AssetRef(key), nil
	}

	if _, err := c.call(ctx, actionCompleteUpload, Params{"uploadKey": key}); err != nil {
		return "", &UploadError{Source: source, Step: actionCompleteUpload.String(), Key: key, cause: err}
	}

	succeeded, err := report.Field("succeeded")
	if err != nil {
		return "", &UploadError{
			Source: source,
			Step:   actionStartUpload.String(),
			Key:    key,
			cause:  fmt.Errorf("upload did not succeed, report: %s", report),
		}
	}
	ref, err := succeeded.Field("upload_file")
	if err != nil {
		return "", &UploadError{Source: source, Step: actionStartUpload.String(), Key: key, cause: err}
	}

	return assetRefOf(ref), nil
}

// UploadProgress wraps Upload.GetUploadProgress for uploads started with
// NoBlock.
func (c *Client) UploadProgress(ctx context.Context, uploadKey string) (result.Value, error) {
	if !c.Connected() {
		return result.Value{}, ErrNotConnected
	}
	return c.call(ctx, actionUploadProgress, Params{"uploadKey": uploadKey})
}

// stringField reads a string field, tolerating numeric ids.
func stringField(v result.Value, name string) (string, error) {
	f, err := v.Field(name)
	if err != nil {
		return "", err
	}
	return asString(f)
}

func asString(v result.Value) (string, error) {
	if s, err := v.Str(); err == nil {
		return s, nil
	}
	if n, err := v.Int(); err == nil {
		return fmt.Sprintf("%d", n), nil
	}
	return "", fmt.Errorf("value %s is neither string nor number", v)
}

func assetRefOf(v result.Value) AssetRef {
	s, err := asString(v)
	if err != nil {
		return AssetRef(v.String())
	}
	return AssetRef(s)
}
