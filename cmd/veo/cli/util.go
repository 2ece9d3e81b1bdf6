package cli

import (
	"fmt"
	"path/filepath"
	"strings"
)

// outputPaths returns the file path for each of count videos derived from
// base. A single video keeps the base name; multiple videos get a numeric
// suffix before the extension, starting at 1. A base without an extension
// gets ".mp4".
func outputPaths(base string, count int) []string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".mp4"
	}
	if count <= 1 {
		return []string{stem + ext}
	}
	paths := make([]string, count)
	for i := range paths {
		paths[i] = fmt.Sprintf("%s-%d%s", stem, i+1, ext)
	}
	return paths
}
