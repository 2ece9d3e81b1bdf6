package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMIMETypeForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"frame.jpg", "image/jpeg"},
		{"frame.jpeg", "image/jpeg"},
		{"frame.JPG", "image/jpeg"},
		{"frame.png", "image/png"},
		{"frame.webp", "image/webp"},
		{"frame.gif", "image/png"},
		{"frame", "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.expected, MIMETypeForPath(tt.path))
		})
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "start.png")
	content := []byte{0x89, 0x50, 0x4e, 0x47}
	require.NoError(t, os.WriteFile(path, content, 0644))

	image, err := LoadImage(path)
	require.NoError(t, err)
	require.Equal(t, content, image.Data)
	require.Equal(t, "image/png", image.MIMEType)
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	var notFoundErr *InputNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	require.Contains(t, notFoundErr.Path, "missing.png")
	require.ErrorIs(t, err, notFoundErr.Err)
}
