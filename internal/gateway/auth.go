package gateway

import (
	"context"
)

// LoginResult is the backend's response to a successful credential
// exchange.
type LoginResult struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// Login exchanges credentials for a token. The privileged-role check is
// the auth gateway's job, not this method's.
func (c *Client) Login(ctx context.Context, phoneNumber, password string) (LoginResult, error) {
	body := map[string]any{
		"phoneNumber": phoneNumber,
		"password":    password,
	}
	value, err := c.post(ctx, "/api/auth/login", body)
	if err != nil {
		return LoginResult{}, err
	}
	var result LoginResult
	if err := decodeInto(value, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}
