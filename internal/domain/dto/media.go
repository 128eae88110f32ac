package dto

import "hotelmedia/internal/domain/model"

// MediaResponse carries the listing and, after a mutation, the notice. Items is
// omitted when a post mutation refresh failed so clients keep what they show.
type MediaResponse struct {
	Notice  *Notice            `json:"notice,omitempty"`
	Items   *[]model.MediaItem `json:"items,omitempty"`
	Changed *bool              `json:"changed,omitempty"`
}

type RenameRequest struct {
	Name string `json:"name"`
}

type ConfirmPrompt struct {
	Confirm string `json:"confirm"`
	Notice  Notice `json:"notice"`
}
