package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockedAtThreshold(t *testing.T) {
	// 20 bookings at 0.50 each is exactly 10.00: locked.
	assert.True(t, Locked(20, 50, 1000))
}

func TestLockedBelowThreshold(t *testing.T) {
	// 19 bookings at 0.50 each is 9.50: still open.
	assert.False(t, Locked(19, 50, 1000))
}

func TestLockedZeroPending(t *testing.T) {
	assert.False(t, Locked(0, 50, 1000))
}

func TestLockedAboveThreshold(t *testing.T) {
	assert.True(t, Locked(100, 50, 1000))
}
