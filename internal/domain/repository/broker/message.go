package broker

// Message is one delivered event. It stays pending until acked.
type Message interface {
	ID() string
	Body() string
	Ack() error
	Nack() error
}
