package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning"
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Printf("[%s] %s", wl.renderID, message)

	// Send to web console if channel is available (non-blocking)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			RenderID:  wl.renderID,
			Message:   message,
			Timestamp: time.Now(),
			Level:     messageLevel(message),
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}

// messageLevel flags texture fallbacks and cancellations as warnings
func messageLevel(message string) string {
	if strings.HasPrefix(message, "texture:") || strings.Contains(message, "cancelled") {
		return "warning"
	}
	return "info"
}
