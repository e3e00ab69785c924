package vault

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"strings"
)

// readFile reads a file from disk.
func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// resolveParent finds the parent directory node for vaultPath and
// returns it along with the child's base name. It replaces the
// teacher's ResolveParentNode, which walked a Metanet pubkey tree;
// here the tree is the plain path-keyed LocalState, so resolution is
// just path.Dir/path.Base plus a lookup.
func (v *Vault) resolveParent(vaultPath string) (*NodeState, string, error) {
	clean := cleanVaultPath(vaultPath)
	if clean == "/" {
		return nil, "", fmt.Errorf("vault: %q is the root and has no parent", vaultPath)
	}

	dir := path.Dir(clean)
	name := path.Base(clean)

	parent := v.State.GetNode(dir)
	if parent == nil {
		return nil, "", fmt.Errorf("vault: parent directory %q not found", dir)
	}
	if parent.Type != "dir" {
		return nil, "", fmt.Errorf("vault: %q is not a directory", dir)
	}
	return parent, name, nil
}

// cleanVaultPath normalizes a vault path to an absolute, slash-separated
// path with no trailing slash (except the root itself).
func cleanVaultPath(p string) string {
	if p == "" {
		p = "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	clean := path.Clean(p)
	return clean
}

// addChild appends childPath to parent's Children list if not already
// present, and persists parent.
func (v *Vault) addChild(parent *NodeState, childPath string) {
	for _, c := range parent.Children {
		if c == childPath {
			return
		}
	}
	parent.Children = append(parent.Children, childPath)
	v.State.SetNode(parent.Path, parent)
}

// removeChild removes childPath from parent's Children list and
// persists parent.
func (v *Vault) removeChild(parent *NodeState, childPath string) {
	out := parent.Children[:0]
	for _, c := range parent.Children {
		if c != childPath {
			out = append(out, c)
		}
	}
	parent.Children = out
	v.State.SetNode(parent.Path, parent)
}

// DetectMimeType guesses MIME type from filename extension.
func DetectMimeType(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".txt":
		return "text/plain"
	case ".html", ".htm":
		return "text/html"
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".json":
		return "application/json"
	case ".xml":
		return "application/xml"
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	case ".mp4":
		return "video/mp4"
	case ".mp3":
		return "audio/mpeg"
	case ".zip":
		return "application/zip"
	case ".gz":
		return "application/gzip"
	case ".tar":
		return "application/x-tar"
	case ".csv":
		return "text/csv"
	case ".md":
		return "text/markdown"
	default:
		return http.DetectContentType([]byte{})
	}
}
