package utils

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const suffixLength = 5

// NewObjectName builds a collision resistant object name of the form
// <unix-millis>-<random>.<ext>, optionally nested under folder.
func NewObjectName(folder, fileName, mimeType string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength]
	name := fmt.Sprintf("%d-%s%s", now.UnixMilli(), suffix, FileExtension(fileName, mimeType))

	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}

	return path.Join(folder, name)
}
