package broker

import "context"

// Publisher appends one encoded media event to the event stream.
type Publisher interface {
	Publish(ctx context.Context, message string) error
}
