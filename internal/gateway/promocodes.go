package gateway

import (
	"context"
	"fmt"
)

func (c *Client) PromoCodes(ctx context.Context) (any, error) {
	return c.get(ctx, "/api/admin/promo-codes", nil)
}

func (c *Client) CreatePromoCode(ctx context.Context, promoCode map[string]any) (any, error) {
	return c.post(ctx, "/api/admin/promo-codes", promoCode)
}

// TogglePromoCode flips a promo code between active and inactive.
func (c *Client) TogglePromoCode(ctx context.Context, promoCodeID int64) (any, error) {
	return c.post(ctx, fmt.Sprintf("/api/admin/promo-codes/%d/toggle", promoCodeID), nil)
}
