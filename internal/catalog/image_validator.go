package catalog

import (
	"errors"
	"path/filepath"
	"strings"
)

var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

func ValidateImageExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedImageExt[ext] {
		return errors.New("file type not allowed")
	}

	return nil
}
