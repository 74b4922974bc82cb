package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// WebLogger implements core.Logger by tagging every message with a render ID
type WebLogger struct {
	renderID string
	logger   *log.Logger
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, logger *log.Logger) core.Logger {
	if logger == nil {
		logger = log.Default()
	}
	return &WebLogger{
		renderID: renderID,
		logger:   logger,
	}
}

// newRenderID returns a fresh identifier for a render request
func newRenderID() string {
	return uuid.NewString()
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	for _, line := range strings.Split(message, "\n") {
		wl.logger.Printf("[render %s] %s", wl.renderID, line)
	}
}
