package game

// Theme names a matched enemy/projectile family.
type Theme string

const (
	ThemeSpace Theme = "space"
	ThemeArmy  Theme = "army"
)

// EntityFactory produces a theme-consistent family of entities. A factory
// never mixes variants across themes: its enemies and projectiles always
// belong together visually and behaviorally.
type EntityFactory interface {
	// CreateEnemy returns a new enemy with its top-left at (x, y).
	CreateEnemy(x, y float64) Enemy

	// CreateBullet returns a new projectile centered at (x, y), cloned from
	// the factory's long-lived prototype.
	CreateBullet(x, y float64) Projectile

	// Theme identifies the family this factory produces.
	Theme() Theme
}

// SpaceFactory produces the space family: aliens and lasers.
type SpaceFactory struct {
	// prototype is a clone source only. It is never inserted into the live
	// projectile collection and never mutated after construction.
	prototype Projectile
}

// NewSpaceFactory creates a space factory with its laser prototype.
func NewSpaceFactory() *SpaceFactory {
	return &SpaceFactory{prototype: NewProjectile(ProjectileLaser, 0, 0)}
}

func (f *SpaceFactory) CreateEnemy(x, y float64) Enemy {
	return NewEnemy(EnemyAlien, x, y)
}

func (f *SpaceFactory) CreateBullet(x, y float64) Projectile {
	return f.prototype.Clone(x, y)
}

func (f *SpaceFactory) Theme() Theme {
	return ThemeSpace
}

// ArmyFactory produces the army family: soldiers and normal bullets.
type ArmyFactory struct {
	prototype Projectile
}

// NewArmyFactory creates an army factory with its bullet prototype.
func NewArmyFactory() *ArmyFactory {
	return &ArmyFactory{prototype: NewProjectile(ProjectileNormal, 0, 0)}
}

func (f *ArmyFactory) CreateEnemy(x, y float64) Enemy {
	return NewEnemy(EnemySoldier, x, y)
}

func (f *ArmyFactory) CreateBullet(x, y float64) Projectile {
	return f.prototype.Clone(x, y)
}

func (f *ArmyFactory) Theme() Theme {
	return ThemeArmy
}
