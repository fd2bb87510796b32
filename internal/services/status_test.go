package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusHub_HistoryRing(t *testing.T) {
	hub := NewStatusHub(3)
	base := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		hub.Broadcast(StatusSample{
			CapturedAt:  base.Add(time.Duration(i) * time.Second),
			GatewayMode: "cloud",
		})
	}

	history := hub.History(0)
	assert.Len(t, history, 3)
	// Oldest first, trimmed to the newest three.
	assert.Equal(t, base.Add(2*time.Second), history[0].CapturedAt)
	assert.Equal(t, base.Add(4*time.Second), history[2].CapturedAt)

	limited := hub.History(2)
	assert.Len(t, limited, 2)
	assert.Equal(t, base.Add(3*time.Second), limited[0].CapturedAt)
}

func TestCaptureStatus_TagsGatewayMode(t *testing.T) {
	sample := CaptureStatus("fallback")
	assert.Equal(t, "fallback", sample.GatewayMode)
	assert.False(t, sample.CapturedAt.IsZero())
}
