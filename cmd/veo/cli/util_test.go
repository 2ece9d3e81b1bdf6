package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		count    int
		expected []string
	}{
		{
			name:     "single video keeps base name",
			base:     "output.mp4",
			count:    1,
			expected: []string{"output.mp4"},
		},
		{
			name:     "single video without extension",
			base:     "output",
			count:    1,
			expected: []string{"output.mp4"},
		},
		{
			name:     "multiple videos get numeric suffixes",
			base:     "output.mp4",
			count:    3,
			expected: []string{"output-1.mp4", "output-2.mp4", "output-3.mp4"},
		},
		{
			name:     "multiple videos without extension",
			base:     "clips/scene",
			count:    2,
			expected: []string{"clips/scene-1.mp4", "clips/scene-2.mp4"},
		},
		{
			name:     "zero count treated as single",
			base:     "output.mp4",
			count:    0,
			expected: []string{"output.mp4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, outputPaths(tt.base, tt.count))
		})
	}
}

func TestOutputPathsAreDistinct(t *testing.T) {
	paths := outputPaths("video.mp4", 4)
	seen := map[string]bool{}
	for _, path := range paths {
		require.False(t, seen[path], "duplicate path %q", path)
		seen[path] = true
	}
}
