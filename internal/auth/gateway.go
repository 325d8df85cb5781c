// Package auth owns the session lifecycle: credential exchange, the
// privileged-role check layered on top of transport success, and
// teardown.
package auth

import (
	"context"
	"errors"

	"github.com/ahmadalarjah/crypto-admin/internal/domain"
	"github.com/ahmadalarjah/crypto-admin/internal/gateway"
	"github.com/ahmadalarjah/crypto-admin/internal/session"
)

const defaultRole = "ADMIN"

type Gateway struct {
	Client *gateway.Client
	Store  session.Store
	// Role is the privileged role required to hold a session. Defaults
	// to ADMIN.
	Role string
}

func NewGateway(client *gateway.Client, store session.Store, role string) *Gateway {
	if role == "" {
		role = defaultRole
	}
	return &Gateway{Client: client, Store: store, Role: role}
}

// Login exchanges credentials for a session. A backend rejection
// surfaces as *domain.AuthenticationError. A 2xx login whose role is
// not the privileged role surfaces as *domain.AuthorizationError, and
// no session takes effect: whatever was stored before is cleared.
func (g *Gateway) Login(ctx context.Context, phoneNumber, password string) (domain.Session, error) {
	result, err := g.Client.Login(ctx, phoneNumber, password)
	if err != nil {
		var backendErr *domain.BackendError
		if errors.As(err, &backendErr) {
			message := backendErr.Message
			if message == "" {
				message = "Login failed"
			}
			return domain.Session{}, &domain.AuthenticationError{Message: message}
		}
		return domain.Session{}, err
	}

	if result.Role != g.role() {
		_ = g.Store.Clear(ctx)
		return domain.Session{}, &domain.AuthorizationError{Message: "Access denied. Admin privileges required."}
	}

	sess := domain.Session{
		Identity: domain.Identity{
			ID:       result.UserID,
			Username: result.Username,
			Role:     result.Role,
		},
		Token: result.Token,
	}
	if err := g.Store.Save(ctx, sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// Logout clears the session store. It never calls the backend.
func (g *Gateway) Logout(ctx context.Context) error {
	return g.Store.Clear(ctx)
}

// Current returns the active session, if a valid one is persisted.
func (g *Gateway) Current(ctx context.Context) (domain.Session, error) {
	return g.Store.Load(ctx)
}

func (g *Gateway) role() string {
	if g.Role == "" {
		return defaultRole
	}
	return g.Role
}
