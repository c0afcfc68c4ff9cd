package discord

import (
	"encoding/json"
	"strings"
	"testing"

	"vanity-notify/internal/domain/model"
)

func TestBuildPayloadColorIsFixedByNotification(t *testing.T) {
	for _, desc := range []string{"", "```", strings.Repeat("x", 10000), "{\"color\":1}"} {
		body, err := json.Marshal(BuildPayload(model.Notification{Title: "t", Description: desc, Color: 65280}))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !strings.Contains(string(body), `"color":65280`) {
			t.Fatalf("color missing from %s", body)
		}
	}
}
