package model

import (
	"strings"
	"time"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// ParseMediaType accepts the singular and plural forms used in routes.
func ParseMediaType(s string) (MediaType, bool) {
	switch strings.ToLower(s) {
	case "image", "images":
		return MediaImage, true
	case "video", "videos":
		return MediaVideo, true
	}

	return "", false
}

// MediaTypeOf classifies stored MIME metadata. Anything that is not an image is
// shown as a video.
func MediaTypeOf(mimeType string) MediaType {
	if strings.Contains(mimeType, "image") {
		return MediaImage
	}

	return MediaVideo
}

// MediaItem is one object of the cross bucket media listing. It is rebuilt on every fetch.
type MediaItem struct {
	Bucket    string            `json:"bucket"`
	ID        string            `json:"id"`
	URL       string            `json:"url"`
	Type      MediaType         `json:"type"`
	Name      string            `json:"name"`
	Size      int64             `json:"size"`
	CreatedAt time.Time         `json:"created_at"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Object is a row returned by the object store when listing a bucket.
type Object struct {
	ID        string
	Name      string
	CreatedAt time.Time
	MimeType  string
	Size      int64
	Metadata  map[string]string
}
