package entity

import "io"

// File is an upload candidate as received from a client.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}
