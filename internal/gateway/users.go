package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Users lists platform users, optionally filtered by plan.
func (c *Client) Users(ctx context.Context, planID int64) (any, error) {
	var query url.Values
	if planID > 0 {
		query = url.Values{"planId": {strconv.FormatInt(planID, 10)}}
	}
	return c.get(ctx, "/api/admin/users", query)
}

func (c *Client) UserDetails(ctx context.Context, userID int64) (any, error) {
	return c.get(ctx, fmt.Sprintf("/api/admin/users/%d", userID), nil)
}

func (c *Client) ActivateUser(ctx context.Context, userID int64) (any, error) {
	return c.post(ctx, fmt.Sprintf("/api/admin/users/%d/activate", userID), nil)
}

func (c *Client) SuspendUser(ctx context.Context, userID int64) (any, error) {
	return c.post(ctx, fmt.Sprintf("/api/admin/users/%d/suspend", userID), nil)
}

// UpdateUserBalance adjusts a user's balance by amount, with an
// operator-supplied reason.
func (c *Client) UpdateUserBalance(ctx context.Context, userID int64, amount float64, reason string) (any, error) {
	body := map[string]any{"amount": amount, "reason": reason}
	return c.post(ctx, fmt.Sprintf("/api/admin/users/%d/balance", userID), body)
}

func (c *Client) UpdateUserReferralLimit(ctx context.Context, userID int64, limit int) (any, error) {
	body := map[string]any{"limit": limit}
	return c.post(ctx, fmt.Sprintf("/api/admin/users/%d/referral-limit", userID), body)
}

func (c *Client) UserReferralUsage(ctx context.Context, userID int64) (any, error) {
	return c.get(ctx, fmt.Sprintf("/api/admin/users/%d/referral-usage", userID), nil)
}

func (c *Client) ActivateUserCounter(ctx context.Context, userID int64) (any, error) {
	return c.post(ctx, fmt.Sprintf("/api/admin/users/%d/counter/activate", userID), nil)
}

func (c *Client) DeactivateUserCounter(ctx context.Context, userID int64) (any, error) {
	return c.post(ctx, fmt.Sprintf("/api/admin/users/%d/counter/deactivate", userID), nil)
}
