package discord

import "vanity-notify/internal/domain/model"

// Payload is the JSON body accepted by a Discord webhook.
type Payload struct {
	Embeds []Embed `json:"embeds"`
}

// Embed is a single rich message block.
type Embed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

// BuildPayload wraps the notification in a one-element embed list.
func BuildPayload(notification model.Notification) Payload {
	return Payload{
		Embeds: []Embed{
			{
				Title:       notification.Title,
				Description: notification.Description,
				Color:       notification.Color,
			},
		},
	}
}
