// Package session persists the single active admin session: bearer
// token plus minimal identity. A loaded session whose role is not the
// privileged role, whose record is malformed, or whose token has
// already expired is discarded and the backing storage cleared.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/ahmadalarjah/crypto-admin/internal/domain"
)

type Store interface {
	// Load returns the persisted session, or domain.ErrNoSession when
	// none is present or the persisted record was discarded.
	Load(ctx context.Context) (domain.Session, error)
	// Save persists token and identity atomically.
	Save(ctx context.Context, sess domain.Session) error
	// Clear removes all persisted session data.
	Clear(ctx context.Context) error
}

// validate decides whether a persisted session may take effect. It does
// not verify the token signature; expiry is a best-effort peek and
// opaque (non-JWT) tokens pass.
func validate(sess domain.Session, role string, now time.Time) bool {
	if strings.TrimSpace(sess.Token) == "" {
		return false
	}
	if sess.Role != role {
		return false
	}
	if TokenExpired(sess.Token, now) {
		return false
	}
	return true
}
