package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGunFiresImmediatelyThenCoolsDown(t *testing.T) {
	g := NewGun(3)

	require.True(t, g.TryFire(), "a fresh gun is ready")
	require.False(t, g.TryFire(), "firing starts the cooldown")

	g.Tick()
	g.Tick()
	require.False(t, g.TryFire(), "still one tick short")

	g.Tick()
	require.True(t, g.TryFire())
}

func TestGunZeroCooldownFiresEveryTick(t *testing.T) {
	g := NewGun(0)
	for i := 0; i < 5; i++ {
		require.True(t, g.TryFire())
		g.Tick()
	}
}

func TestGunHeldFireRate(t *testing.T) {
	// Holding fire for 60 ticks with an 18-tick cooldown lands 4 shots:
	// at ticks 0, 18, 36 and 54.
	g := NewGun(18)
	shots := 0
	for i := 0; i < 60; i++ {
		g.Tick()
		if g.TryFire() {
			shots++
		}
	}
	require.Equal(t, 4, shots)
}
