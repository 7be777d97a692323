package domain

import "time"

// Timestamps holds standard creation/update times for domain entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Channel identifies the surface a request originated from.
type Channel string

const (
	ChannelWeb      Channel = "WEB"
	ChannelWhatsApp Channel = "WHATSAPP"
)

// Executor returns the audit executor for the channel: bot traffic is
// attributed to the ClawdBot integration, everything else to the web UI.
func (c Channel) Executor() string {
	if c == ChannelWhatsApp {
		return "CLAWDBOT"
	}
	return "WEB"
}

// IsValid reports whether the channel is a known value.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelWeb, ChannelWhatsApp:
		return true
	}
	return false
}
