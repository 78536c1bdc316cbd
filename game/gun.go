package game

// Gun gates the fire command so a held fire key shoots at a bounded rate.
// The cooldown is counted in simulation ticks, which keeps the core free of
// wall-clock time.
type Gun struct {
	cooldownTicks int
	sinceLastShot int
}

// NewGun creates a gun that is immediately ready to fire.
func NewGun(cooldownTicks int) *Gun {
	return &Gun{
		cooldownTicks: cooldownTicks,
		sinceLastShot: cooldownTicks,
	}
}

// Tick advances the cooldown by one simulation tick.
func (g *Gun) Tick() {
	if g.sinceLastShot < g.cooldownTicks {
		g.sinceLastShot++
	}
}

// TryFire reports whether a shot may be taken now and, if so, restarts the
// cooldown.
func (g *Gun) TryFire() bool {
	if g.sinceLastShot < g.cooldownTicks {
		return false
	}
	g.sinceLastShot = 0
	return true
}
