package middleware

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/nbd-wtf/go-nostr"

	"hotelmedia/internal/domain/dto"
	"hotelmedia/internal/domain/repository/session"
	"hotelmedia/internal/presentation"
	"hotelmedia/pkg/i18n"
)

var (
	errMissingHeader = errors.New("missing Authorization header")
	errNotAdmin      = errors.New("not an administrator")
	errRevoked       = errors.New("credentials have been revoked")
)

type AdminAuthConfig struct {
	JWTSecret    []byte
	AdminPubKeys []string
	Revoker      session.Revoker
}

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuth admits requests carrying either an admin JWT or a signed admin nostr event.
// Bad or missing credentials get 401, valid non admin ones 403.
func AdminAuth(cfg AdminAuthConfig) echo.MiddlewareFunc {
	admins := make(map[string]struct{}, len(cfg.AdminPubKeys))
	for _, pk := range cfg.AdminPubKeys {
		admins[strings.ToLower(pk)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get(presentation.AuthKey)

			var (
				id  *presentation.Identity
				err error
			)

			switch {
			case authHeader == "":
				err = errMissingHeader
			case strings.HasPrefix(authHeader, presentation.BearerPrefix):
				id, err = verifyToken(strings.TrimPrefix(authHeader, presentation.BearerPrefix), cfg.JWTSecret)
			case strings.HasPrefix(authHeader, presentation.NostrPrefix):
				id, err = verifyEvent(authHeader, admins)
			default:
				err = errors.New("unsupported Authorization scheme")
			}

			if err != nil {
				return deny(ctx, err)
			}

			if cfg.Revoker != nil {
				revoked, err := cfg.Revoker.IsRevoked(ctx.Request().Context(), id.TokenID)
				if err != nil {
					logger.Error("couldn't check credential revocation", "err", err)
					ctx.Response().Header().Set(presentation.ReasonTag, "revocation check failed")

					return ctx.NoContent(http.StatusServiceUnavailable)
				}

				if revoked {
					return deny(ctx, errRevoked)
				}
			}

			ctx.Set(presentation.KeyIdentity, id)

			return next(ctx)
		}
	}
}

func deny(ctx echo.Context, err error) error {
	loc := presentation.Localizer(ctx)

	status, key := http.StatusUnauthorized, i18n.AuthInvalid
	switch {
	case errors.Is(err, errMissingHeader):
		key = i18n.AuthMissing
	case errors.Is(err, errNotAdmin):
		status, key = http.StatusForbidden, i18n.AuthForbidden
	}

	ctx.Response().Header().Set(presentation.ReasonTag, err.Error())

	return ctx.JSON(status, dto.ErrorNotice(loc, loc.T(key)))
}

func verifyToken(raw string, secret []byte) (*presentation.Identity, error) {
	if len(secret) == 0 {
		return nil, errors.New("bearer tokens are not accepted")
	}

	claims := &adminClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims.ID == "" {
		return nil, errors.New("token has no jti")
	}

	if claims.Role != presentation.AdminAction {
		return nil, errNotAdmin
	}

	return &presentation.Identity{
		Subject:   claims.Subject,
		TokenID:   claims.ID,
		Method:    "jwt",
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func verifyEvent(authHeader string, admins map[string]struct{}) (*presentation.Identity, error) {
	event, err := decodeEvent(authHeader)
	if err != nil {
		return nil, err
	}

	if err := validateEvent(event, presentation.AdminAction); err != nil {
		return nil, err
	}

	if _, ok := admins[strings.ToLower(event.PubKey)]; !ok {
		return nil, errNotAdmin
	}

	return &presentation.Identity{
		Subject:   event.PubKey,
		TokenID:   event.ID,
		Method:    "nostr",
		ExpiresAt: time.Unix(int64(getExpirationTime(event)), 0),
	}, nil
}

func decodeEvent(authHeader string) (*nostr.Event, error) {
	eventBase64 := strings.TrimPrefix(authHeader, presentation.NostrPrefix)
	eventBytes, err := base64.StdEncoding.DecodeString(eventBase64)
	if err != nil {
		return nil, fmt.Errorf("decode base64 event failed: %s", err.Error())
	}

	event := &nostr.Event{}
	if err = json.Unmarshal(eventBytes, event); err != nil {
		return nil, fmt.Errorf("json decode failed: %s", err.Error())
	}

	return event, nil
}

func validateEvent(event *nostr.Event, action string) error {
	if ok, err := event.CheckSignature(); !ok || err != nil {
		return errors.New("invalid signature")
	}
	if event.Kind != presentation.AuthKind {
		return errors.New("invalid kind")
	}
	if event.CreatedAt.Time().Unix() > time.Now().Add(1*time.Minute).Unix() {
		return errors.New("invalid created_at")
	}

	expiration := getTagValue(event, presentation.ExpTag)
	if expiration == "" {
		return errors.New("empty expiration tag")
	}

	t := getTagValue(event, presentation.TTag)
	if t == "" {
		return errors.New("empty t tag")
	}
	if t != action {
		return errors.New("invalid action")
	}

	expirationTime, err := strconv.Atoi(expiration)
	if err != nil || time.Unix(int64(expirationTime), 0).Unix() < time.Now().Unix() {
		return errors.New("invalid expiration")
	}

	return nil
}

func getTagValue(event *nostr.Event, tagName string) string {
	tag := event.Tags.Find(tagName)
	if len(tag) > 1 {
		return tag[1]
	}

	return ""
}

func getExpirationTime(event *nostr.Event) int {
	expirationTime, _ := strconv.Atoi(getTagValue(event, presentation.ExpTag))

	return expirationTime
}
