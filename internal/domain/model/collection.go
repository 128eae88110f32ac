package model

import (
	"fmt"
	"time"
)

type CollectionKind string

const (
	KindService CollectionKind = "service"
	KindGallery CollectionKind = "gallery"
)

func ParseCollectionKind(s string) (CollectionKind, bool) {
	switch CollectionKind(s) {
	case KindService, KindGallery:
		return CollectionKind(s), true
	}

	return "", false
}

// Bucket is the storage bucket files of this kind are uploaded to. Bucket names
// may not contain underscores.
func (k CollectionKind) Bucket() string {
	return string(k) + "-media"
}

type CollectionRef struct {
	Kind     CollectionKind
	EntityID string
}

func (r CollectionRef) Key() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.EntityID)
}

// MediaCollection holds the ordered image and video URLs a service or gallery
// entry references.
type MediaCollection struct {
	Key       string         `bson:"_id"`
	Kind      CollectionKind `bson:"kind"`
	EntityID  string         `bson:"entity_id"`
	Images    []string       `bson:"images"`
	Videos    []string       `bson:"videos"`
	UpdatedAt time.Time      `bson:"updated_at"`
}

func NewMediaCollection(ref CollectionRef) *MediaCollection {
	return &MediaCollection{
		Key:      ref.Key(),
		Kind:     ref.Kind,
		EntityID: ref.EntityID,
		Images:   []string{},
		Videos:   []string{},
	}
}

func (c *MediaCollection) List(t MediaType) []string {
	if t == MediaVideo {
		return c.Videos
	}

	return c.Images
}
