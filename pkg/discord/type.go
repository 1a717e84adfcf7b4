package discord

import (
	"net/http"
	"time"

	"roi-srv/pkg/log"
)

// Config contains configuration for the Discord notifier.
type Config struct {
	Timeout         time.Duration
	DefaultUsername string
}

// DefaultConfig returns the notifier defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		DefaultUsername: "roi-srv",
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// discordImpl implements IDiscord.
type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  *http.Client
}

// webhookPayload is the Discord webhook request body.
type webhookPayload struct {
	Username string  `json:"username,omitempty"`
	Content  string  `json:"content,omitempty"`
	Embeds   []embed `json:"embeds,omitempty"`
}

type embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
}

const (
	colorRed  = 0xE74C3C
	colorBlue = 0x3498DB
)
