package gateway

import (
	"context"
	"fmt"
)

func (c *Client) WalletChangeRequests(ctx context.Context) (any, error) {
	return c.get(ctx, "/api/admin/wallet-change-requests", nil)
}

func (c *Client) PendingWalletChangeRequests(ctx context.Context) (any, error) {
	return c.get(ctx, "/api/admin/wallet-change-requests/pending", nil)
}

func (c *Client) ApproveWalletChangeRequest(ctx context.Context, requestID int64, adminNotes string) (any, error) {
	body := map[string]any{"adminNotes": adminNotes}
	return c.post(ctx, fmt.Sprintf("/api/admin/wallet-change-requests/%d/approve", requestID), body)
}

func (c *Client) RejectWalletChangeRequest(ctx context.Context, requestID int64, adminNotes string) (any, error) {
	body := map[string]any{"adminNotes": adminNotes}
	return c.post(ctx, fmt.Sprintf("/api/admin/wallet-change-requests/%d/reject", requestID), body)
}
