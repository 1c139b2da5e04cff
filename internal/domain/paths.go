package domain

import "strings"

// RelativeTo makes path relative to root when root is a string prefix of
// path. This is intentionally naive: no ".." resolution, no symlinks, no
// case folding. Callers supply already-normalized roots; anything that does
// not share the prefix is returned unchanged, which also makes the function
// idempotent on already-relative paths.
func RelativeTo(path, root string) string {
	if root == "" || path == "" {
		return path
	}
	if path == root {
		return ""
	}
	prefix := root
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if strings.HasPrefix(path, prefix) {
		return path[len(prefix):]
	}
	return path
}
