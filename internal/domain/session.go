package domain

// Identity is the minimal admin record persisted alongside the bearer token.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session is the current authenticated admin: identity plus bearer token.
// Exactly one session is active at a time.
type Session struct {
	Identity
	Token string `json:"token"`
}
