package utils

import (
	"bytes"
	"errors"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

const sniffLen = 3072

// SniffContentType detects the MIME type of r from its leading bytes. The returned
// reader yields the full original content.
func SniffContentType(r io.Reader) (string, io.Reader, error) {
	header := make([]byte, sniffLen)

	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", nil, err
	}

	header = header[:n]

	return mimetype.Detect(header).String(), io.MultiReader(bytes.NewReader(header), r), nil
}
