package policy

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sandglass-dev/sandglass-sdk/domain/ports"
)

// Ensure implementations satisfy the interface.
var _ ports.DenialHandler = (*StderrDenialHandler)(nil)
var _ ports.DenialHandler = (*SlogDenialHandler)(nil)
var _ ports.DenialHandler = (*NopDenialHandler)(nil)

// StderrDenialHandler logs denials to stderr.
type StderrDenialHandler struct{}

func (h *StderrDenialHandler) OnDenial(kind string, request any, reason string) {
	fmt.Fprintf(os.Stderr, "Permission Denied [%s]: %v (Reason: %s)\n", kind, request, reason)
}

// SlogDenialHandler logs denials through a structured logger.
type SlogDenialHandler struct {
	Logger *slog.Logger
}

// NewSlogDenialHandler creates a handler logging to logger, or to
// slog.Default() when logger is nil.
func NewSlogDenialHandler(logger *slog.Logger) *SlogDenialHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogDenialHandler{Logger: logger}
}

func (h *SlogDenialHandler) OnDenial(kind string, request any, reason string) {
	h.Logger.Warn("permission denied",
		slog.String("kind", kind),
		slog.Any("request", request),
		slog.String("reason", reason),
	)
}

// NopDenialHandler does nothing.
type NopDenialHandler struct{}

func (h *NopDenialHandler) OnDenial(kind string, request any, reason string) {}
