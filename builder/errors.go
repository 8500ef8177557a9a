// SPDX-License-Identifier: MIT
package builder

import "errors"

var (
	// ErrTooFewSides reports a polygon request with fewer than three sides.
	ErrTooFewSides = errors.New("builder: polygon needs at least three sides")

	// ErrBadRadius reports a non-positive circumradius.
	ErrBadRadius = errors.New("builder: radius must be positive")

	// ErrBadGrid reports a honeycomb request with no rows or no columns.
	ErrBadGrid = errors.New("builder: grid needs at least one row and one column")
)
