package minio

import (
	"errors"
	"net/http"

	"github.com/minio/minio-go/v7"

	"hotelmedia/internal/domain/repository/storage"
)

// classifiedError keeps the backend message intact while matching a storage sentinel.
type classifiedError struct {
	kind error
	err  error
}

func (e *classifiedError) Error() string { return e.err.Error() }

func (e *classifiedError) Unwrap() []error { return []error{e.kind, e.err} }

func classify(err error) error {
	if err == nil {
		return nil
	}

	var kind error

	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "AccessDenied", "AllAccessDisabled", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		kind = storage.ErrPermissionDenied
	case "BucketAlreadyOwnedByYou", "BucketAlreadyExists":
		kind = storage.ErrBucketExists
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		kind = storage.ErrNotFound
	default:
		switch resp.StatusCode {
		case http.StatusForbidden:
			kind = storage.ErrPermissionDenied
		case http.StatusNotFound:
			kind = storage.ErrNotFound
		}
	}

	if kind == nil || errors.Is(err, kind) {
		return err
	}

	return &classifiedError{kind: kind, err: err}
}
