package server

import (
	"path/filepath"
	"strings"
)

// safeJoin resolves user-supplied path segments under root. It rejects
// empty and absolute segments and any result that escapes the root,
// the root itself included.
func safeJoin(root string, parts ...string) (string, bool) {
	for _, part := range parts {
		if part == "" || filepath.IsAbs(part) {
			return "", false
		}
	}
	joined := filepath.Join(append([]string{root}, parts...)...)
	if !isSubpath(root, joined) {
		return "", false
	}
	return joined, true
}

// isSubpath ensures child is strictly within root, preventing path
// traversal.
func isSubpath(root, child string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absChild, err := filepath.Abs(child)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absChild)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
