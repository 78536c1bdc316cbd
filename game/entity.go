package game

import "image/color"

// RenderTarget is the sink entities draw themselves into. Draw calls are
// fire-and-forget; the core never reads anything back from the renderer.
type RenderTarget interface {
	// FillRect draws a filled rectangle with top-left corner (x, y).
	FillRect(x, y, w, h float64, clr color.Color)

	// FillCircle draws a filled circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, clr color.Color)
}

// Entity is the capability set shared by enemies and projectiles.
type Entity interface {
	// Bounds returns the entity's bounding box, recomputed from its
	// current position and fixed size.
	Bounds() Rect

	// SetPosition moves the entity's top-left corner to (x, y).
	SetPosition(x, y float64)

	// Update advances the entity by one simulation tick.
	Update()

	// Draw renders the entity into the target.
	Draw(rt RenderTarget)

	// OffScreen reports whether the entity has left the arena vertically.
	// The rule differs per entity family; see Enemy and Projectile.
	OffScreen(arenaHeight float64) bool
}

// Enemy is an entity that descends toward the player. It is off-screen only
// once it has fallen past the bottom edge; enemies never leave through the top.
type Enemy interface {
	Entity

	// Kind identifies the concrete enemy variant.
	Kind() EnemyKind
}

// Projectile is an entity fired by the player. It ascends, so it can leave
// through the top edge, and in pathological cases fall back past the bottom.
type Projectile interface {
	Entity

	// Kind identifies the concrete projectile variant.
	Kind() ProjectileKind

	// Clone returns a fresh, independently-owned projectile of the same
	// variant with its center placed at (x, y). The receiver is not mutated.
	Clone(x, y float64) Projectile
}
