package media

import (
	"path/filepath"
	"strings"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// IsSupportedExt returns true if the extension is a decodable image format.
func IsSupportedExt(ext string) bool {
	return imageExts[strings.ToLower(ext)]
}

// IsSupportedPath reports whether path has a decodable image extension.
func IsSupportedPath(path string) bool {
	return IsSupportedExt(filepath.Ext(path))
}

// SupportedExtsList returns a human-readable list of supported image formats.
func SupportedExtsList() string {
	return ".png, .jpg, .jpeg, .gif"
}
