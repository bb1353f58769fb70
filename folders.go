package thirdlight

import (
	"context"
	"fmt"
	"strings"

	"github.com/rethought/thirdlight-go/result"
)

// The IMS addresses folders by id, not by name. LoadFolderTree walks the
// remote hierarchy via Folders.GetTopLevelFolders and
// Folders.GetContainersForParent and caches a path -> id map on the client,
// so UploadImage can take UNIX style destination paths. Walking the tree
// costs one call per folder with children, so reload sparingly.
func (c *Client) LoadFolderTree(ctx context.Context) error {
	if !c.Connected() {
		return ErrNotConnected
	}

	c.logger.Info("loading folder tree")

	tree := map[string]string{}
	if err := c.walkFolders(ctx, "", "/", tree); err != nil {
		return err
	}

	c.mu.Lock()
	c.folders = tree
	c.mu.Unlock()

	return nil
}

func (c *Client) walkFolders(ctx context.Context, folderID, parentPath string, tree map[string]string) error {
	var (
		res result.Value
		err error
	)
	if folderID == "" {
		res, err = c.call(ctx, actionTopLevelFolders, nil)
	} else {
		res, err = c.call(ctx, actionChildrenOfFolder, Params{"containerId": folderID})
	}
	if err != nil {
		return err
	}

	// folders come back keyed by id inside outParams:
	// {"<id>": {"name": ..., "hasChildContainers": ...}, ...}
	out, err := res.Field("outParams")
	if err != nil {
		return fmt.Errorf("folder listing for %q: %w", parentPath, err)
	}

	for _, id := range out.Keys() {
		meta, err := out.Field(id)
		if err != nil {
			return err
		}
		name, err := stringField(meta, "name")
		if err != nil {
			return fmt.Errorf("folder %s under %q: %w", id, parentPath, err)
		}

		path := parentPath + name + "/"
		tree[path] = id

		hasChildren := false
		if hc, err := meta.Field("hasChildContainers"); err == nil {
			hasChildren, _ = hc.Bool()
		}
		if hasChildren {
			if err := c.walkFolders(ctx, id, path, tree); err != nil {
				return err
			}
		}
	}

	return nil
}

// ResolveFolderID resolves a UNIX style path such as /beaches/broome to an
// IMS folder id, loading the folder tree on first use. An unknown path
// yields a *FolderNotFoundError.
func (c *Client) ResolveFolderID(ctx context.Context, path string) (string, error) {
	if !c.Connected() {
		return "", ErrNotConnected
	}

	path = normalizeFolderPath(path)

	c.mu.Lock()
	loaded := c.folders != nil
	c.mu.Unlock()

	if !loaded {
		if err := c.LoadFolderTree(ctx); err != nil {
			return "", err
		}
	}

	c.mu.Lock()
	id, ok := c.folders[path]
	c.mu.Unlock()

	if !ok {
		return "", &FolderNotFoundError{Path: path}
	}
	return id, nil
}

// FolderTree returns a copy of the loaded path -> id map, empty until
// LoadFolderTree or ResolveFolderID ran.
func (c *Client) FolderTree() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	tree := make(map[string]string, len(c.folders))
	for p, id := range c.folders {
		tree[p] = id
	}
	return tree
}

func normalizeFolderPath(path string) string {
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}
