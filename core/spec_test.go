// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hemesh/core"
)

func TestSpec_MergeAndClone(t *testing.T) {
	t.Parallel()

	base := core.NewSpec()
	base.Table(core.KindFace)["area"] = 0.0
	base.Table(core.KindFace)["num_sides"] = 6
	base.Settings["geometry"] = "planar"

	patch := core.NewSpec()
	patch.Table(core.KindFace)["num_sides"] = 3
	patch.Table(core.KindVert)["is_active"] = true
	patch.Settings["height"] = 1.0

	base.Merge(patch)
	assert.Equal(t, 3, base.Defaults[core.KindFace]["num_sides"])
	assert.Equal(t, 0.0, base.Defaults[core.KindFace]["area"])
	assert.Equal(t, true, base.Defaults[core.KindVert]["is_active"])
	assert.Equal(t, "planar", base.Settings["geometry"])
	assert.Equal(t, 1.0, base.Settings["height"])

	base.Merge(nil) // no-op

	clone := base.Clone()
	clone.Table(core.KindFace)["num_sides"] = 99
	clone.Settings["geometry"] = "bulk"
	assert.Equal(t, 3, base.Defaults[core.KindFace]["num_sides"])
	assert.Equal(t, "planar", base.Settings["geometry"])
}
