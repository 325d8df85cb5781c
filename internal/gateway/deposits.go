package gateway

import (
	"context"
	"fmt"
	"net/url"
)

// Deposits lists deposits, optionally filtered by status (for example
// "PENDING").
func (c *Client) Deposits(ctx context.Context, status string) (any, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {status}}
	}
	return c.get(ctx, "/api/admin/deposits", query)
}

func (c *Client) ApproveDeposit(ctx context.Context, depositID int64) (any, error) {
	return c.post(ctx, fmt.Sprintf("/api/admin/deposits/%d/approve", depositID), nil)
}

func (c *Client) RejectDeposit(ctx context.Context, depositID int64) (any, error) {
	return c.post(ctx, fmt.Sprintf("/api/admin/deposits/%d/reject", depositID), nil)
}
