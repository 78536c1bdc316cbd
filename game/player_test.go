package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayerStartsCenteredAtBottom(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	require.Equal(t, 375.0, p.X)
	require.Equal(t, 570.0, p.Y)
}

func TestPlayerMoveClampsToArena(t *testing.T) {
	const arenaW, arenaH = 800.0, 600.0

	tests := []struct {
		name   string
		dx, dy float64
		wantX  float64
		wantY  float64
	}{
		{"large move left clamps to zero", -1000, 0, 0, 300},
		{"large move right clamps to right edge", 1000, 0, arenaW - 50, 300},
		{"large move up clamps to top", 0, -1000, 100, 0},
		{"large move down clamps to bottom", 0, 1000, 100, arenaH - 30},
		{"small move is unclamped", 5, -5, 105, 295},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(DefaultConfig())
			p.X, p.Y = 100, 300
			p.Move(tt.dx, tt.dy, arenaW, arenaH)
			require.Equal(t, tt.wantX, p.X)
			require.Equal(t, tt.wantY, p.Y)
		})
	}
}

func TestPlayerBounds(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	p.X, p.Y = 10, 20
	require.Equal(t, Rect{X: 10, Y: 20, W: 50, H: 30}, p.Bounds())
}
