package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"
)

// ResolveAssetURL turns a relative image or link destination into a file://
// URL under assetDir. URLs, anchors, absolute paths and destinations that
// escape assetDir are returned unchanged, as is everything when assetDir is
// empty.
func ResolveAssetURL(dest, assetDir string) string {
	if assetDir == "" || !isRelativePath(dest) {
		return dest
	}

	absDir, err := filepath.Abs(assetDir)
	if err != nil {
		return dest
	}

	// Drop any query or fragment before touching the filesystem path.
	path, suffix := dest, ""
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		path, suffix = dest[:i], dest[i:]
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}

	absPath := filepath.Join(absDir, path)
	if !isPathUnderDir(absPath, absDir) {
		return dest
	}
	return pathToFileURL(absPath) + suffix
}

// isRelativePath reports whether path should be resolved against the asset
// directory.
func isRelativePath(path string) bool {
	if path == "" {
		return false
	}

	if strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}

	// Anything with a scheme (http:, mailto:, data:, file:) is already
	// resolved.
	if u, err := url.Parse(path); err == nil && u.Scheme != "" {
		return false
	}

	return !filepath.IsAbs(path) && !strings.HasPrefix(path, "/")
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
