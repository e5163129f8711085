package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/resellops/resell-sync/internal/metrics"
)

const (
	colorRed    = 0xE74C3C // delist failed
	colorOrange = 0xE67E22 // manual work required
	colorYellow = 0xF1C40F // overflow summary
)

// Discord allows at most 10 embeds per message.
const maxEmbeds = 10

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendAlert sends a single cleanup alert as a Discord embed.
func (d *DiscordNotifier) SendAlert(ctx context.Context, alert CleanupAlert) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(alert)},
	}
	return d.post(ctx, payload)
}

// SendBatchAlert sends the alerts for one dispatched sale as a single
// Discord message.
func (d *DiscordNotifier) SendBatchAlert(
	ctx context.Context,
	alerts []CleanupAlert,
	itemID string,
) error {
	embeds := make([]discordEmbed, 0, len(alerts))

	limit := min(len(alerts), maxEmbeds)
	for i := 0; i < limit; i++ {
		embeds = append(embeds, buildEmbed(alerts[i]))
	}

	if len(alerts) > maxEmbeds {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more alerts for %s", len(alerts)-maxEmbeds, itemID),
			Color:       colorYellow,
			Description: "Check the audit log for the full list.",
		})
	}

	payload := discordWebhookPayload{Embeds: embeds}
	return d.post(ctx, payload)
}

func buildEmbed(alert CleanupAlert) discordEmbed {
	title := fmt.Sprintf("Manual delist needed: %s on %s", alert.ItemID, alert.Platform)
	if alert.Kind == KindDelistFailed {
		title = fmt.Sprintf("Delist failed: %s on %s", alert.ItemID, alert.Platform)
	}

	embed := discordEmbed{
		Title: title,
		Color: kindColor(alert.Kind),
		Fields: []discordEmbedField{
			{Name: "Item", Value: alert.ItemID, Inline: true},
			{Name: "Sold On", Value: string(alert.SoldOn), Inline: true},
			{Name: "Platform", Value: string(alert.Platform), Inline: true},
		},
	}

	if alert.Detail != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "Detail", Value: alert.Detail,
		})
	}

	return embed
}

func kindColor(kind AlertKind) int {
	if kind == KindDelistFailed {
		return colorRed
	}
	return colorOrange
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := d.client.Do(req)
	metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
