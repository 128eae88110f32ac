package storage

import "errors"

// Adapters translate backend specific failures into these so callers can classify
// them with errors.Is.
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrBucketExists     = errors.New("bucket already exists")
	ErrObjectExists     = errors.New("object already exists")
	ErrNotFound         = errors.New("not found")
)
