package model

import "time"

type MediaAction string

const (
	ActionUploaded          MediaAction = "uploaded"
	ActionRenamed           MediaAction = "renamed"
	ActionDeleted           MediaAction = "deleted"
	ActionCollectionChanged MediaAction = "collection_changed"
)

// MediaEvent is published on the broker after a successful mutation.
type MediaEvent struct {
	Action  MediaAction `json:"action"`
	Bucket  string      `json:"bucket,omitempty"`
	Name    string      `json:"name,omitempty"`
	NewName string      `json:"new_name,omitempty"`
	Owner   string      `json:"owner,omitempty"`
	At      time.Time   `json:"at"`
}
