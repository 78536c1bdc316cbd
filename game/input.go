package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard polls ebiten key state and turns it into the per-frame input the
// simulation consumes. Arrow keys and WASD both work.
type Keyboard struct{}

// NewKeyboard creates a keyboard input source.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Movement returns the held directional vector, -1/0/+1 per axis.
func (k *Keyboard) Movement() (float64, float64) {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += 1
	}
	return dx, dy
}

// Fire reports whether the fire key is held this frame. Rate limiting is the
// gun's job, not the keyboard's.
func (k *Keyboard) Fire() bool {
	return ebiten.IsKeyPressed(ebiten.KeySpace)
}

// Restart reports whether the restart key was pressed this frame.
func (k *Keyboard) Restart() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
