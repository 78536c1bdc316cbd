package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// backgroundColor fills the arena before anything is drawn on top.
var backgroundColor = color.RGBA{10, 10, 25, 255}

// Renderer adapts an ebiten screen to the RenderTarget sink the simulation
// draws into, and renders the HUD on top.
type Renderer struct {
	screen *ebiten.Image
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Begin points the renderer at this frame's screen and clears it.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	r.screen.Fill(backgroundColor)
}

// FillRect draws a filled rectangle with top-left corner (x, y).
func (r *Renderer) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(w), float32(h), clr, true)
}

// FillCircle draws a filled circle centered at (cx, cy).
func (r *Renderer) FillCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(r.screen, float32(cx), float32(cy), float32(radius), clr, true)
}

// DrawHUD renders the score, level and active theme in the top-left corner.
func (r *Renderer) DrawHUD(state *State) {
	face := basicfont.Face7x13
	text.Draw(r.screen, fmt.Sprintf("Score: %d", state.Score), face, 10, 20, color.White)
	text.Draw(r.screen, fmt.Sprintf("Level: %d", state.Level), face, 10, 40, color.White)
	text.Draw(r.screen, fmt.Sprintf("Theme: %s", state.ActiveFactory().Theme()), face, 10, 60, color.White)
}

// DrawGameOver renders the loss screen with the final score.
func (r *Renderer) DrawGameOver(state *State, screenWidth, screenHeight int) {
	face := basicfont.Face7x13
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Final Score: %d", state.Score),
		"Press R to restart",
	}
	y := screenHeight/2 - 20
	for _, line := range lines {
		x := (screenWidth - len(line)*7) / 2
		text.Draw(r.screen, line, face, x, y, color.RGBA{255, 80, 80, 255})
		y += 20
	}
}
