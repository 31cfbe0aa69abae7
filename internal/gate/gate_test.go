package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmRequiresTwoCalls(t *testing.T) {
	g := New()

	assert.False(t, g.Confirm())
	assert.True(t, g.Pending())

	assert.True(t, g.Confirm())
	assert.False(t, g.Pending())
}

func TestConfirmResetsAfterConsumption(t *testing.T) {
	g := New()

	g.Confirm()
	g.Confirm()

	// Gate is one-shot: the next cycle starts from scratch.
	assert.False(t, g.Confirm())
	assert.True(t, g.Confirm())
}

func TestReset(t *testing.T) {
	g := New()

	g.Confirm()
	assert.True(t, g.Pending())

	g.Reset()
	assert.False(t, g.Pending())
	assert.False(t, g.Confirm())
}

func TestGatesAreIndependent(t *testing.T) {
	elevate := New()
	installer := New()

	elevate.Confirm()
	assert.True(t, elevate.Pending())
	assert.False(t, installer.Pending())
}
