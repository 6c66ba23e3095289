package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard_StaleGeneration(t *testing.T) {
	var g Guard

	first := g.Begin()
	assert.True(t, g.Current(first))

	second := g.Begin()
	assert.False(t, g.Current(first), "earlier generation must be stale")
	assert.True(t, g.Current(second))
}

func TestGuard_ZeroValueHasNoCurrentGeneration(t *testing.T) {
	var g Guard
	assert.False(t, g.Current(1))
}
