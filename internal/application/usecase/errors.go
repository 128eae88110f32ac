package usecase

import (
	"errors"
	"fmt"
	"strings"

	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/domain/repository/storage"
)

var (
	ErrUnsupportedType = errors.New("only image and video files are allowed")
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrTooManyFiles    = errors.New("too many files")
	ErrEmptyURL        = errors.New("url is empty")
	ErrInvalidURL      = errors.New("url is not valid")
	ErrUploadFailed    = errors.New("no file could be uploaded")
	ErrMissingName     = errors.New("a new name is required")

	ErrInvalidDates          = errors.New("dates must use the YYYY-MM-DD format")
	ErrCheckinInPast         = errors.New("check-in date is in the past")
	ErrCheckoutBeforeCheckin = errors.New("check-out date is before check-in date")
	ErrGuestCountOutOfBounds = errors.New("number of guests is out of bounds")
)

// PermissionError marks a storage call the configured credentials were not allowed to make.
type PermissionError struct {
	Action string
	Err    error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission error while %s, check storage service permissions: %v", e.Action, e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

type TooManyFilesError struct {
	Type model.MediaType
	Max  int
}

func (e *TooManyFilesError) Error() string {
	return fmt.Sprintf("at most %d %ss are allowed", e.Max, e.Type)
}

func (e *TooManyFilesError) Is(target error) bool { return target == ErrTooManyFiles }

type FileTooLargeError struct {
	Type  model.MediaType
	Name  string
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s is larger than %d bytes", e.Name, e.Limit)
}

func (e *FileTooLargeError) Is(target error) bool { return target == ErrFileTooLarge }

type InvalidFileTypeError struct {
	Type     model.MediaType
	Name     string
	MimeType string
}

func (e *InvalidFileTypeError) Error() string {
	return fmt.Sprintf("%s has type %q which is not an allowed %s type", e.Name, e.MimeType, e.Type)
}

func (e *InvalidFileTypeError) Is(target error) bool { return target == ErrInvalidFileType }

func isPermission(err error) bool {
	return errors.Is(err, storage.ErrPermissionDenied) ||
		strings.Contains(strings.ToLower(err.Error()), "permission")
}

func isAlreadyExists(err error) bool {
	return errors.Is(err, storage.ErrBucketExists) ||
		strings.Contains(strings.ToLower(err.Error()), "already exists")
}

// asPermission rewraps permission failures and returns anything else unchanged.
func asPermission(err error, action string) error {
	if err == nil || !isPermission(err) {
		return err
	}

	var pe *PermissionError
	if errors.As(err, &pe) {
		return err
	}

	return &PermissionError{Action: action, Err: err}
}
