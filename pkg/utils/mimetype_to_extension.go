package utils

import (
	"path"
	"strings"
)

// mimeTypeToExtension maps the media types the console accepts to their usual extensions.
var mimeTypeToExtension = map[string]string{
	"image/avif":      ".avif",
	"image/bmp":       ".bmp",
	"image/gif":       ".gif",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/svg+xml":   ".svg",
	"image/tiff":      ".tif",
	"image/webp":      ".webp",
	"video/mp4":       ".mp4",
	"video/mpeg":      ".mpeg",
	"video/ogg":       ".ogv",
	"video/quicktime": ".mov",
	"video/webm":      ".webm",
	"video/x-msvideo": ".avi",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "image/svg+xml; charset=utf-8")
	cleanedMimeType := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	if ext, ok := mimeTypeToExtension[strings.ToLower(cleanedMimeType)]; ok {
		return ext
	}

	return ".bin"
}

// FileExtension returns the extension of fileName including the dot, falling back to
// the MIME type when the name has none.
func FileExtension(fileName, mimeType string) string {
	if ext := path.Ext(path.Base(fileName)); ext != "" && ext != "." {
		return strings.ToLower(ext)
	}

	return GetExtensionFromMimeType(mimeType)
}
