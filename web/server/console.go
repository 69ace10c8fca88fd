package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	renderID    string
	serverLog   echo.Logger
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, serverLog echo.Logger, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		serverLog:   serverLog,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	if wl.serverLog != nil {
		wl.serverLog.Infof("[%s] %s", wl.renderID, message)
	}

	// Send to web console if channel is available (non-blocking)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			RenderID:  wl.renderID,
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}

// newRenderLogger allocates a render ID and a logger feeding the console
func (s *Server) newRenderLogger() (string, core.Logger) {
	s.consoleMu.Lock()
	s.renderCount++
	renderID := fmt.Sprintf("render-%d", s.renderCount)
	s.consoleMu.Unlock()

	return renderID, NewWebLogger(renderID, s.echo.Logger, s.console)
}

// drainConsole moves pending messages into the bounded history
func (s *Server) drainConsole() []ConsoleMessage {
	s.consoleMu.Lock()
	defer s.consoleMu.Unlock()

	for {
		select {
		case msg := <-s.console:
			s.recent = append(s.recent, msg)
		default:
			if excess := len(s.recent) - consoleHistory; excess > 0 {
				s.recent = append([]ConsoleMessage(nil), s.recent[excess:]...)
			}
			messages := make([]ConsoleMessage, len(s.recent))
			copy(messages, s.recent)
			return messages
		}
	}
}

// handleConsole returns recent render log lines, optionally for one render
func (s *Server) handleConsole(c echo.Context) error {
	messages := s.drainConsole()
	if renderID := c.QueryParam("render"); renderID != "" {
		filtered := messages[:0]
		for _, msg := range messages {
			if msg.RenderID == renderID {
				filtered = append(filtered, msg)
			}
		}
		messages = filtered
	}
	return c.JSON(http.StatusOK, messages)
}
