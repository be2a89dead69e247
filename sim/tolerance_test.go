package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedByTolerance_UpBoundary(t *testing.T) {
	// ratio 1.09 is within a 0.1 tolerance band; 1.11 is outside it.
	assert.False(t, AllowedByTolerance(DirectionUp, 109, 100, 0.1))
	assert.True(t, AllowedByTolerance(DirectionUp, 111, 100, 0.1))
}

func TestAllowedByTolerance_DownBoundary(t *testing.T) {
	assert.False(t, AllowedByTolerance(DirectionDown, 91, 100, 0.1))
	assert.True(t, AllowedByTolerance(DirectionDown, 89, 100, 0.1))
}

func TestAllowedByTolerance_ZeroTolerance(t *testing.T) {
	// Any deviation triggers when tolerance is zero.
	assert.True(t, AllowedByTolerance(DirectionUp, 100.01, 100, 0))
	assert.True(t, AllowedByTolerance(DirectionDown, 99.99, 100, 0))
	assert.False(t, AllowedByTolerance(DirectionUp, 100, 100, 0))
	assert.False(t, AllowedByTolerance(DirectionDown, 100, 100, 0))
}

func TestAllowedByTolerance_WrongDirection(t *testing.T) {
	assert.False(t, AllowedByTolerance(DirectionUp, 50, 100, 0.1))
	assert.False(t, AllowedByTolerance(DirectionDown, 200, 100, 0.1))
	assert.False(t, AllowedByTolerance(DirectionHold, 200, 100, 0.1))
}

func TestAllowedByTolerance_DegenerateTarget(t *testing.T) {
	assert.False(t, AllowedByTolerance(DirectionUp, 200, 0, 0.1))
	assert.False(t, AllowedByTolerance(DirectionDown, 200, -5, 0.1))
}

func TestDesiredReplicas(t *testing.T) {
	assert.Equal(t, 8, DesiredReplicas(3, 250, 100))
	assert.Equal(t, 18, DesiredReplicas(7, 250, 100))
	assert.Equal(t, 3, DesiredReplicas(3, 100, 100))
	assert.Equal(t, 2, DesiredReplicas(10, 15, 100))
	assert.Equal(t, 0, DesiredReplicas(10, 0, 100))
	// Degenerate target holds at the current count.
	assert.Equal(t, 5, DesiredReplicas(5, 250, 0))
	// Negative metric never drives the count below zero.
	assert.Equal(t, 0, DesiredReplicas(5, -20, 100))
}

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, DirectionUp, DirectionOf(3, 8))
	assert.Equal(t, DirectionDown, DirectionOf(8, 3))
	assert.Equal(t, DirectionHold, DirectionOf(3, 3))
}
