package utils

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffContentType(t *testing.T) {
	t.Parallel()

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 5000)...)

	mime, body, err := SniffContentType(bytes.NewReader(png))
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	all, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, png, all)
}

func TestSniffShortInput(t *testing.T) {
	t.Parallel()

	mime, body, err := SniffContentType(strings.NewReader("hi"))
	require.NoError(t, err)
	assert.Contains(t, mime, "text/plain")

	all, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(all))
}
