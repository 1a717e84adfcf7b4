package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

// SendMessage posts a plain content message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.post(ctx, webhookPayload{
		Username: d.config.DefaultUsername,
		Content:  content,
	})
}

// SendError posts an error embed. The wrapped error is appended to the
// description so the channel shows the root cause.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	desc := description
	if err != nil {
		desc = fmt.Sprintf("%s\n```%v```", description, err)
	}
	return d.post(ctx, webhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []embed{{Title: title, Description: desc, Color: colorRed}},
	})
}

// SendInfo posts an informational embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.post(ctx, webhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []embed{{Title: title, Description: description, Color: colorBlue}},
	})
}

// Close releases idle connections.
func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) post(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.l.Warnf(ctx, "discord: webhook post failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
