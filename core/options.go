// SPDX-License-Identifier: MIT
package core

import "log/slog"

// Option configures an Epithelium at construction.
type Option func(e *Epithelium)

// WithCoords sets the vertex coordinate column names, in order.
// The default is ("x", "y", "z"); two or three names are accepted,
// anything else fails construction with ErrDimensionMismatch.
func WithCoords(coords ...string) Option {
	return func(e *Epithelium) {
		e.coords = append([]string(nil), coords...)
	}
}

// WithSpec sets the column-default specification applied at construction.
func WithSpec(spec *Spec) Option {
	return func(e *Epithelium) { e.spec = spec }
}

// WithIdentifier names the epithelium. Without it, a fresh UUID is used.
func WithIdentifier(id string) Option {
	return func(e *Epithelium) { e.identifier = id }
}

// WithLogger routes the epithelium's structural-change log records to l.
// The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Epithelium) { e.logger = l }
}
