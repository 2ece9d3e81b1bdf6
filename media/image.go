package media

import (
	"os"
	"path/filepath"
	"strings"
)

var mimeTypesByExtension = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// MIMETypeForPath returns the image mime type implied by a file extension,
// defaulting to image/png for unrecognized extensions.
func MIMETypeForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mimeType, ok := mimeTypesByExtension[ext]; ok {
		return mimeType
	}
	return "image/png"
}

// LoadImage reads an image file from disk. A missing or unreadable path is
// an *InputNotFoundError.
func LoadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputNotFoundError{Path: path, Err: err}
	}
	return &Image{
		Data:     data,
		MIMEType: MIMETypeForPath(path),
	}, nil
}
