package aistest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertInDeltaValidity checks a validity-tagged float value: when isValid
// is true it requires actual to be within delta of expect, naming status in
// the failure message. It does not compare statuses, and when isValid is
// false it asserts nothing. It is
// used to compare decoded positions and other float fields where the
// ITU-R M.1371-5 resolution constants introduce floating point rounding.
func AssertInDeltaValidity(t *testing.T, status string, expect, actual float64, isValid bool, delta float64) {
	t.Helper()
	if !isValid {
		return
	}
	assert.InDelta(t, expect, actual, delta, "status %s", status)
}
