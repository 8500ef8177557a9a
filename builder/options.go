// SPDX-License-Identifier: MIT
package builder

import (
	"log/slog"

	"github.com/katalvlaran/hemesh/core"
)

// Option adjusts how a fixture is assembled.
type Option func(c *config)

// config carries the resolved construction parameters of one fixture.
type config struct {
	spec       *core.Spec
	identifier string
	logger     *slog.Logger
}

// resolve applies opts on top of the fixture defaults.
func resolve(identifier string, spec *core.Spec, opts []Option) config {
	c := config{spec: spec, identifier: identifier}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// coreOptions translates the resolved config into construction options.
func (c config) coreOptions(coords []string) []core.Option {
	opts := []core.Option{
		core.WithCoords(coords...),
		core.WithSpec(c.spec),
		core.WithIdentifier(c.identifier),
	}
	if c.logger != nil {
		opts = append(opts, core.WithLogger(c.logger))
	}
	return opts
}

// WithSpec swaps the canned column-default specification of a fixture.
func WithSpec(spec *core.Spec) Option {
	return func(c *config) { c.spec = spec }
}

// WithIdentifier overrides the fixture's default identifier.
func WithIdentifier(id string) Option {
	return func(c *config) { c.identifier = id }
}

// WithLogger routes the epithelium's log records to l instead of
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
