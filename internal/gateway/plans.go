package gateway

import (
	"context"
	"fmt"
)

func (c *Client) Plans(ctx context.Context) (any, error) {
	return c.get(ctx, "/api/admin/plans", nil)
}

// CreatePlan posts a new investment plan. The backend owns the plan
// schema; the payload is forwarded as-is.
func (c *Client) CreatePlan(ctx context.Context, plan map[string]any) (any, error) {
	return c.post(ctx, "/api/admin/plans", plan)
}

func (c *Client) UpdatePlan(ctx context.Context, planID int64, plan map[string]any) (any, error) {
	return c.put(ctx, fmt.Sprintf("/api/admin/plans/%d", planID), plan)
}

func (c *Client) DeletePlan(ctx context.Context, planID int64) (any, error) {
	return c.delete(ctx, fmt.Sprintf("/api/admin/plans/%d", planID))
}
