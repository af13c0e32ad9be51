package main

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Stream SSE /api/live berumur panjang; write deadline global akan
// memutusnya di tengah jalan.
func TestTuneServerTimeoutsKeepsStreamsAlive(t *testing.T) {
	app := fiber.New()
	tuneServerTimeouts(app)

	if got := app.Server().WriteTimeout; got != 0 {
		t.Errorf("WriteTimeout = %v, harus 0 supaya stream SSE tidak terputus", got)
	}
	if got := app.Server().ReadTimeout; got != 15*time.Second {
		t.Errorf("ReadTimeout = %v, want 15s", got)
	}
	if got := app.Server().IdleTimeout; got != 90*time.Second {
		t.Errorf("IdleTimeout = %v, want 90s", got)
	}
}
