package minio

import (
	"net/url"
	"strings"
)

// URLResolver maps objects to the public URLs served for public-read buckets.
type URLResolver struct {
	base string
}

func NewURLResolver(cfg *ClientConfig) *URLResolver {
	base := cfg.PublicBaseURL
	if base == "" {
		scheme := "http"
		if cfg.Secure {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint
	}

	return &URLResolver{base: strings.TrimRight(base, "/")}
}

func (r *URLResolver) PublicURL(bucket, name string) string {
	segments := strings.Split(name, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return r.base + "/" + bucket + "/" + strings.Join(segments, "/")
}

func (r *URLResolver) ObjectName(bucket, raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	marker := "/" + bucket + "/"
	idx := strings.Index(u.Path, marker)
	if idx < 0 {
		return "", false
	}

	name := u.Path[idx+len(marker):]
	if name == "" {
		return "", false
	}

	return name, true
}
