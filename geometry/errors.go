// SPDX-License-Identifier: MIT
package geometry

import "errors"

// Sentinel errors for geometry updates.
var (
	// ErrDimension indicates a three-dimensional update requested on a
	// planar epithelium.
	ErrDimension = errors.New("geometry: update requires three coordinates")
)
