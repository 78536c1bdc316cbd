package game

import "image/color"

// playerColor is the fixed visual tag for the player avatar.
var playerColor = color.RGBA{0, 255, 0, 255}

// Player is the player-controlled avatar: a fixed-size box moved by input and
// clamped to the arena.
type Player struct {
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64 // Pixels per tick per held direction
}

// NewPlayer creates the player centered horizontally at the bottom of the
// arena.
func NewPlayer(config Config) *Player {
	return &Player{
		X:      (float64(config.ScreenWidth) - config.PlayerWidth) / 2,
		Y:      float64(config.ScreenHeight) - config.PlayerHeight,
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
		Speed:  config.PlayerSpeed,
	}
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Move translates the player by (dx, dy), then clamps both axes so the whole
// bounding box stays inside [0, arenaWidth] x [0, arenaHeight].
func (p *Player) Move(dx, dy, arenaWidth, arenaHeight float64) {
	p.X += dx
	p.Y += dy

	if p.X < 0 {
		p.X = 0
	}
	if p.X+p.Width > arenaWidth {
		p.X = arenaWidth - p.Width
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y+p.Height > arenaHeight {
		p.Y = arenaHeight - p.Height
	}
}

// Draw renders the player into the target.
func (p *Player) Draw(rt RenderTarget) {
	rt.FillRect(p.X, p.Y, p.Width, p.Height, playerColor)
}
