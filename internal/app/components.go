package app

import (
	"io"

	"go.trai.ch/recent/internal/core/ports"
)

// Components contains the initialized application components needed by the CLI.
type Components struct {
	App    *App
	Logger ports.Logger

	closers []io.Closer
}

// NewComponents creates a Components struct. Closers are released by Close in reverse order.
func NewComponents(app *App, logger ports.Logger, closers ...io.Closer) *Components {
	return &Components{App: app, Logger: logger, closers: closers}
}

// Close releases the resources held by the components.
func (c *Components) Close() error {
	var first error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
