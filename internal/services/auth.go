package services

import (
	"context"
	"strings"
	"time"

	"uihub-backend-go/internal/config"
	"uihub-backend-go/internal/models"
	"uihub-backend-go/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrDenied is returned for every failed credential combination. Callers
// surface it visually and nothing else happens: no lockout, no rate
// limiting, no retry backoff.
var ErrDenied = ErrUnauthorized("Authentication failed")

// Authenticate implements the shared-password entry gate. It is a
// placeholder scheme, not a security boundary: access succeeds when the
// trimmed, lowercased username is the configured super-admin identity and
// the passphrase equals the super-admin secret, or when the passphrase
// equals the shared demo secret and the trimmed username is longer than
// two characters. Secrets compare case-sensitively.
//
// On success the matching session record (case-insensitive username
// lookup) carries its role and published count forward with a refreshed
// last-login; a first-time username gets a new record, Admin for the
// super-admin identity, User otherwise. The record is upserted through the
// gateway, which swallows remote failures for user writes.
func Authenticate(ctx context.Context, gw *store.Gateway, cfg config.Config, username, passphrase string) (models.UserSession, error) {
	name := strings.TrimSpace(username)
	lower := strings.ToLower(name)
	secret := strings.TrimSpace(passphrase)

	isSuperAdmin := lower == strings.ToLower(cfg.SuperAdminUsername) && secret == cfg.SuperAdminSecret
	isDemoUser := secret == cfg.DemoSecret && len(name) > 2
	if !isSuperAdmin && !isDemoUser {
		return models.UserSession{}, ErrDenied
	}

	now := store.Stamp(time.Now())
	var session models.UserSession
	found := false
	for _, existing := range gw.Users(ctx) {
		if strings.ToLower(existing.Username) == lower {
			session = existing
			session.LastLogin = now
			found = true
			break
		}
	}
	if !found {
		role := models.RoleUser
		if lower == strings.ToLower(cfg.SuperAdminUsername) {
			role = models.RoleAdmin
		}
		session = models.UserSession{
			ID:             uuid.NewString(),
			Username:       name,
			Role:           role,
			LastLogin:      now,
			PublishedCount: 0,
		}
	}
	gw.SaveUser(ctx, session)
	return session, nil
}

// TokenService signs and parses session tokens. Tokens carry no expiry
// claim: session lifetime is bounded by the stored session-in-progress,
// not by the token itself.
type TokenService struct {
	Secret []byte
	Issuer string
}

func (t TokenService) CreateSessionToken(session models.UserSession) (string, error) {
	claims := jwt.MapClaims{
		"iss":      t.Issuer,
		"sub":      session.ID,
		"username": session.Username,
		"role":     session.Role,
		"iat":      time.Now().UTC().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.Secret)
}

func (t TokenService) ParseToken(tokenStr string) (*jwt.Token, jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.Secret, nil
	}, jwt.WithIssuer(t.Issuer))
	return token, claims, err
}
