// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies that no test in this package leaks a goroutine:
// the epithelium performs no locking and spawns none itself.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
