package gateway

import "context"

func (c *Client) Settings(ctx context.Context) (any, error) {
	return c.get(ctx, "/api/admin/settings", nil)
}

func (c *Client) ToggleMaintenanceMode(ctx context.Context, enabled bool) (any, error) {
	body := map[string]any{"enabled": enabled}
	return c.post(ctx, "/api/admin/settings/maintenance", body)
}

func (c *Client) UpdateAboutContent(ctx context.Context, content string) (any, error) {
	body := map[string]any{"content": content}
	return c.post(ctx, "/api/admin/settings/about", body)
}

func (c *Client) DefaultUsageLimit(ctx context.Context) (any, error) {
	return c.get(ctx, "/api/admin/settings/default-usage-limit", nil)
}

func (c *Client) UpdateDefaultUsageLimit(ctx context.Context, usageLimit int) (any, error) {
	body := map[string]any{"usageLimit": usageLimit}
	return c.post(ctx, "/api/admin/settings/default-usage-limit", body)
}

func (c *Client) UpdatePlatformWallet(ctx context.Context, walletAddress string) (any, error) {
	body := map[string]any{"walletAddress": walletAddress}
	return c.post(ctx, "/api/admin/settings/platform-wallet", body)
}
