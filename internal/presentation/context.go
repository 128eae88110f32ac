package presentation

import (
	"time"

	"github.com/labstack/echo/v4"

	"hotelmedia/pkg/i18n"
)

var defaultBundle = i18n.Default()

// Identity is the authenticated administrator behind a request.
type Identity struct {
	Subject   string    `json:"subject"`
	TokenID   string    `json:"token_id"`
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Localizer returns the request localizer, or the default language when none was set.
func Localizer(c echo.Context) *i18n.Localizer {
	if loc, ok := c.Get(KeyLocalizer).(*i18n.Localizer); ok {
		return loc
	}

	return defaultBundle.Localizer()
}

func CurrentIdentity(c echo.Context) (*Identity, bool) {
	id, ok := c.Get(KeyIdentity).(*Identity)

	return id, ok && id != nil
}

// Owner names the current identity for audit records.
func Owner(c echo.Context) string {
	if id, ok := CurrentIdentity(c); ok {
		return id.Subject
	}

	return ""
}
