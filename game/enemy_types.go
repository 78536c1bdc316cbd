package game

import "image/color"

// EnemyKind identifies a concrete enemy variant.
type EnemyKind int

const (
	EnemyAlien   EnemyKind = iota // Space theme, faster descent
	EnemySoldier                  // Army theme, slower descent
)

// String returns the variant name for logging and the HUD.
func (k EnemyKind) String() string {
	switch k {
	case EnemyAlien:
		return "alien"
	case EnemySoldier:
		return "soldier"
	default:
		return "unknown"
	}
}

// EnemyConfig holds the fixed per-variant constants. Variants differ only by
// these values; the update rule is shared.
type EnemyConfig struct {
	Kind   EnemyKind
	Width  float64
	Height float64
	Speed  float64 // Pixels per tick; positive means downward
	Color  color.RGBA
}

// GetEnemyConfig returns the constants for an enemy variant.
func GetEnemyConfig(kind EnemyKind) EnemyConfig {
	switch kind {
	case EnemyAlien:
		return EnemyConfig{
			Kind:   EnemyAlien,
			Width:  40,
			Height: 40,
			Speed:  3,
			Color:  color.RGBA{0, 255, 100, 255}, // Green
		}
	case EnemySoldier:
		return EnemyConfig{
			Kind:   EnemySoldier,
			Width:  40,
			Height: 40,
			Speed:  2, // Slower than the alien
			Color:  color.RGBA{150, 110, 60, 255}, // Brown
		}
	default:
		return GetEnemyConfig(EnemyAlien)
	}
}

// invader is the shared concrete enemy; the variant is carried in its config.
type invader struct {
	x, y float64
	cfg  EnemyConfig
}

// NewEnemy creates an enemy of the given variant with its top-left at (x, y).
func NewEnemy(kind EnemyKind, x, y float64) Enemy {
	return &invader{x: x, y: y, cfg: GetEnemyConfig(kind)}
}

func (e *invader) Kind() EnemyKind {
	return e.cfg.Kind
}

func (e *invader) Bounds() Rect {
	return Rect{X: e.x, Y: e.y, W: e.cfg.Width, H: e.cfg.Height}
}

func (e *invader) SetPosition(x, y float64) {
	e.x, e.y = x, y
}

// Update advances the enemy one tick of straight descent.
func (e *invader) Update() {
	e.y += e.cfg.Speed
}

func (e *invader) Draw(rt RenderTarget) {
	rt.FillRect(e.x, e.y, e.cfg.Width, e.cfg.Height, e.cfg.Color)
}

// OffScreen reports whether the enemy has fallen past the bottom edge.
// Enemies only descend, so the top edge is never an exit.
func (e *invader) OffScreen(arenaHeight float64) bool {
	return e.y > arenaHeight
}
