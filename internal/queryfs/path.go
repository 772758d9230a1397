package queryfs

import (
	"path"
	"path/filepath"
	"strings"

	sferrors "github.com/swiftfs/swiftfs/internal/errors"
)

// canonicalize validates and normalizes a path to the fully-resolved
// absolute form queries and results are expressed in. Both host-native
// absolute paths and drive-lettered paths are accepted; the latter keeps
// index semantics exact when the engine serves a drive-lettered volume
// regardless of the host the library itself runs on. Relative paths are
// rejected; symbolic links are not resolved (unsupported).
func canonicalize(path string) (string, error) {
	if path == "" {
		return "", sferrors.ArgumentError("path must not be empty", nil)
	}

	if isDriveLettered(path) {
		return cleanDriveLettered(path), nil
	}

	if !filepath.IsAbs(path) {
		return "", sferrors.ArgumentError("path must be absolute: "+path, nil)
	}
	return filepath.Clean(path), nil
}

// isDriveLettered reports whether path has an X:\ or X:/ prefix.
func isDriveLettered(path string) bool {
	if len(path) < 3 || path[1] != ':' {
		return false
	}
	c := path[0]
	if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
		return false
	}
	return path[2] == '\\' || path[2] == '/'
}

// cleanDriveLettered resolves dot segments and duplicate separators and
// normalizes separators to backslash. The volume root keeps its trailing
// separator ("C:\"); deeper paths do not.
func cleanDriveLettered(p string) string {
	drive := p[:2]
	rest := path.Clean(strings.ReplaceAll(p[2:], "\\", "/"))
	if rest == "/" {
		return drive + `\`
	}
	return drive + strings.ReplaceAll(rest, "/", `\`)
}

// volumeRoot derives the readiness cache key from a canonical path: the
// upper-cased drive designator for drive-lettered paths, "/" for rooted
// POSIX paths, empty (unparseable) otherwise.
func volumeRoot(path string) string {
	if isDriveLettered(path) {
		return strings.ToUpper(path[:2])
	}
	if strings.HasPrefix(path, "/") {
		return "/"
	}
	return ""
}

// NormalizeRoot canonicalizes an externally supplied volume root to the
// cache-key form volumeRoot derives: trailing separators trimmed and drive
// designators upper-cased, so "c:", "C:\" and "C:" name the same entry.
func NormalizeRoot(root string) string {
	trimmed := strings.TrimRight(root, `\/`)
	if trimmed == "" {
		if strings.HasPrefix(root, "/") {
			return "/"
		}
		return ""
	}
	if len(trimmed) == 2 && trimmed[1] == ':' {
		return strings.ToUpper(trimmed)
	}
	return trimmed
}

// separator returns the path separator matching the path's form.
func separator(path string) string {
	if isDriveLettered(path) {
		return "\\"
	}
	return "/"
}

// probeScope is the parent scope used by the readiness probe for a root.
func probeScope(root string) (scope, sep string) {
	if root == "/" {
		return "", "/"
	}
	return root, "\\"
}
