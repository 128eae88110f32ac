package broker

import "context"

// Receiver delivers events to a named consumer of the group. The channel is
// closed once ctx is done.
type Receiver interface {
	Messages(ctx context.Context, consumerName string) (<-chan Message, error)
}
