package gateway

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) Withdrawals(ctx context.Context, status string) (any, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {status}}
	}
	return c.get(ctx, "/api/admin/withdrawals", query)
}

func (c *Client) ApproveWithdrawal(ctx context.Context, withdrawalID int64) (any, error) {
	return c.post(ctx, fmt.Sprintf("/api/admin/withdrawals/%d/approve", withdrawalID), nil)
}

// RejectWithdrawal declines a withdrawal with an operator-supplied
// reason shown to the user.
func (c *Client) RejectWithdrawal(ctx context.Context, withdrawalID int64, reason string) (any, error) {
	body := map[string]any{"reason": reason}
	return c.post(ctx, fmt.Sprintf("/api/admin/withdrawals/%d/reject", withdrawalID), body)
}
