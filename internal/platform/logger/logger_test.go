package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/task-api/internal/config"
)

func TestSetup(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error", "DEBUG", "Info"}
	for _, level := range levels {
		log := Setup(config.ServerConfig{LogLevel: level})
		if log == nil {
			t.Fatalf("Setup(%q) returned nil logger", level)
		}
	}

	// Invalid levels fall back to info rather than failing startup.
	log := Setup(config.ServerConfig{LogLevel: "verbose"})
	if log == nil {
		t.Fatal("Setup with invalid level returned nil logger")
	}
	if log.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("invalid level should fall back to info, but debug is enabled")
	}
	if !log.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("invalid level should fall back to info, but info is disabled")
	}
}

func TestContextRoundTrip(t *testing.T) {
	base := slog.Default().With(slog.String("trace_id", "abc123"))

	ctx := WithContext(context.Background(), base)
	if got := FromContext(ctx); got != base {
		t.Error("FromContext did not return the stored logger")
	}
	if got := FromContextOrDefault(ctx, slog.Default()); got != base {
		t.Error("FromContextOrDefault did not prefer the stored logger")
	}
}

func TestContextFallbacks(t *testing.T) {
	ctx := context.Background()

	if got := FromContext(ctx); got != slog.Default() {
		t.Error("FromContext without a stored logger should return the default")
	}

	fallback := slog.Default().With(slog.String("component", "test"))
	if got := FromContextOrDefault(ctx, fallback); got != fallback {
		t.Error("FromContextOrDefault should return the provided fallback")
	}
	if got := FromContextOrDefault(ctx, nil); got != slog.Default() {
		t.Error("FromContextOrDefault with nil fallback should return the default")
	}
}
