package game

import "image/color"

// ProjectileKind identifies a concrete projectile variant.
type ProjectileKind int

const (
	ProjectileLaser  ProjectileKind = iota // Space theme, fast ascent
	ProjectileNormal                       // Army theme, slower ascent
)

// String returns the variant name for logging and the HUD.
func (k ProjectileKind) String() string {
	switch k {
	case ProjectileLaser:
		return "laser"
	case ProjectileNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// ProjectileConfig holds the fixed per-variant constants.
type ProjectileConfig struct {
	Kind   ProjectileKind
	Radius float64
	Speed  float64 // Pixels per tick; negative means upward
	Color  color.RGBA
}

// GetProjectileConfig returns the constants for a projectile variant.
func GetProjectileConfig(kind ProjectileKind) ProjectileConfig {
	switch kind {
	case ProjectileLaser:
		return ProjectileConfig{
			Kind:   ProjectileLaser,
			Radius: 5,
			Speed:  -7,
			Color:  color.RGBA{0, 200, 255, 255}, // Cyan
		}
	case ProjectileNormal:
		return ProjectileConfig{
			Kind:   ProjectileNormal,
			Radius: 5,
			Speed:  -5, // Slower than the laser
			Color:  color.RGBA{255, 255, 0, 255}, // Yellow
		}
	default:
		return GetProjectileConfig(ProjectileLaser)
	}
}

// bullet is the shared concrete projectile; the variant is carried in its
// config. Position is tracked as the top-left of the bounding box so the
// collision pass treats every entity uniformly.
type bullet struct {
	x, y float64
	cfg  ProjectileConfig
}

// NewProjectile creates a projectile of the given variant centered at (x, y).
func NewProjectile(kind ProjectileKind, x, y float64) Projectile {
	cfg := GetProjectileConfig(kind)
	return &bullet{x: x - cfg.Radius, y: y - cfg.Radius, cfg: cfg}
}

func (b *bullet) Kind() ProjectileKind {
	return b.cfg.Kind
}

func (b *bullet) Bounds() Rect {
	return Rect{X: b.x, Y: b.y, W: 2 * b.cfg.Radius, H: 2 * b.cfg.Radius}
}

func (b *bullet) SetPosition(x, y float64) {
	b.x, b.y = x, y
}

// Update advances the projectile one tick of straight ascent.
func (b *bullet) Update() {
	b.y += b.cfg.Speed
}

func (b *bullet) Draw(rt RenderTarget) {
	rt.FillCircle(b.x+b.cfg.Radius, b.y+b.cfg.Radius, b.cfg.Radius, b.cfg.Color)
}

// OffScreen reports whether the projectile has left the arena through either
// vertical edge. Projectiles ascend past the top in the normal case, but a
// variant with positive speed would still be pruned at the bottom.
func (b *bullet) OffScreen(arenaHeight float64) bool {
	return b.y < 0 || b.y > arenaHeight
}

// Clone returns a fresh projectile of the same variant centered at (x, y).
// All constants come from the receiver's config; the receiver is untouched.
func (b *bullet) Clone(x, y float64) Projectile {
	return &bullet{x: x - b.cfg.Radius, y: y - b.cfg.Radius, cfg: b.cfg}
}
