package game

import (
	"math/rand"

	"go.uber.org/zap"
)

// FrameInput is everything the host samples for one frame: whether the
// spawn timer fired, whether fire was requested, and the held movement
// direction (-1, 0 or +1 per axis).
type FrameInput struct {
	SpawnEnemy bool
	Fire       bool
	MoveX      float64
	MoveY      float64
}

// StepStatus is the result of one simulation step.
type StepStatus int

const (
	// StatusRunning means the session continues.
	StatusRunning StepStatus = iota

	// StatusGameOver means an enemy reached the player. This is the designed
	// loss condition, not an error; the host must stop invoking frames.
	StatusGameOver
)

// World owns the live collections and the session state, and advances them
// one frame at a time. Nothing else mutates the collections or the state.
type World struct {
	state  *State
	player *Player
	gun    *Gun

	enemies     []Enemy
	projectiles []Projectile

	rng *rand.Rand
	log *zap.Logger
}

// NewWorld creates a world for one session. The random source is used only
// for the enemy spawn column.
func NewWorld(config Config, rng *rand.Rand, log *zap.Logger) *World {
	return &World{
		state:       NewState(config),
		player:      NewPlayer(config),
		gun:         NewGun(config.FireCooldownTicks),
		enemies:     make([]Enemy, 0, 64),
		projectiles: make([]Projectile, 0, 64),
		rng:         rng,
		log:         log,
	}
}

// State returns the session state for read access (HUD, logging).
func (w *World) State() *State {
	return w.state
}

// Player returns the player avatar.
func (w *World) Player() *Player {
	return w.player
}

// Step runs one frame of the simulation in a fixed order: spawn, fire, move,
// advance and prune enemies, advance and prune projectiles, resolve
// enemy-projectile hits, then check the enemy-player loss condition.
//
// Spawn and fire run before movement so a same-frame fire command still
// participates in this frame's collision pass, and the projectile pass runs
// before the player pass so a frame where an enemy is hit while overlapping
// the player destroys the enemy and the player survives.
func (w *World) Step(in FrameInput) StepStatus {
	// 1. Enemy spawn tick: random column along the top edge, clamped so the
	// enemy starts fully inside the arena.
	if in.SpawnEnemy {
		enemy := w.state.ActiveFactory().CreateEnemy(0, 0)
		maxX := int(w.state.ArenaWidth - enemy.Bounds().W)
		if maxX > 0 {
			enemy.SetPosition(float64(w.rng.Intn(maxX+1)), 0)
		}
		w.enemies = append(w.enemies, enemy)
	}

	// 2. Fire command, gated by the gun cooldown. The projectile starts
	// centered above the player.
	w.gun.Tick()
	if in.Fire && w.gun.TryFire() {
		b := w.state.ActiveFactory().CreateBullet(w.player.X+w.player.Width/2, w.player.Y)
		w.projectiles = append(w.projectiles, b)
	}

	// 3. Player movement, once per frame.
	w.player.Move(in.MoveX*w.player.Speed, in.MoveY*w.player.Speed, w.state.ArenaWidth, w.state.ArenaHeight)

	// 4-5. Advance all entities, dropping anything that left the arena.
	w.enemies = updateAndPrune(w.enemies, w.state.ArenaHeight)
	w.projectiles = updateAndPrune(w.projectiles, w.state.ArenaHeight)

	// 6. Enemy x projectile pass. Hits are marked first and compacted after,
	// so removal never invalidates entries still eligible this pass. An enemy
	// dies to at most one projectile, and a hit projectile is consumed and
	// can never match a second enemy in the same frame.
	w.resolveHits()

	// 7. Enemy x player pass: any overlap ends the session.
	playerBox := w.player.Bounds()
	for _, enemy := range w.enemies {
		if enemy.Bounds().Intersects(playerBox) {
			w.log.Info("enemy reached the player",
				zap.String("enemy", enemy.Kind().String()),
				zap.Int("score", w.state.Score),
			)
			return StatusGameOver
		}
	}

	return StatusRunning
}

// updateAndPrune advances every entity one tick and compacts away the ones
// now off-screen. Removal is permanent; there is no pooling.
func updateAndPrune[E Entity](entities []E, arenaHeight float64) []E {
	kept := entities[:0]
	for _, e := range entities {
		e.Update()
		if !e.OffScreen(arenaHeight) {
			kept = append(kept, e)
		}
	}
	// Clear the tail so dropped entities are collectable.
	for i := len(kept); i < len(entities); i++ {
		var zero E
		entities[i] = zero
	}
	return kept
}

// resolveHits removes every enemy-projectile pair that intersects this frame
// and records one hit per pair. Tie-breaks follow iteration order: an enemy
// takes the first live projectile that overlaps it.
func (w *World) resolveHits() {
	deadEnemies := make(map[int]bool)
	deadProjectiles := make(map[int]bool)

	for ei, enemy := range w.enemies {
		enemyBox := enemy.Bounds()
		for pi, p := range w.projectiles {
			if deadProjectiles[pi] {
				continue
			}
			if enemyBox.Intersects(p.Bounds()) {
				deadEnemies[ei] = true
				deadProjectiles[pi] = true
				levelBefore := w.state.Level
				w.state.RecordHit()
				if w.state.Level != levelBefore {
					w.log.Info("level up",
						zap.Int("level", w.state.Level),
						zap.Int("score", w.state.Score),
						zap.String("theme", string(w.state.ActiveFactory().Theme())),
					)
				}
				break
			}
		}
	}

	if len(deadEnemies) > 0 {
		w.enemies = compact(w.enemies, deadEnemies)
		w.projectiles = compact(w.projectiles, deadProjectiles)
	}
}

// compact filters out the entries whose indices are marked dead.
func compact[E Entity](entities []E, dead map[int]bool) []E {
	kept := entities[:0]
	for i, e := range entities {
		if !dead[i] {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(entities); i++ {
		var zero E
		entities[i] = zero
	}
	return kept
}

// Draw renders the whole world into the target: player first, then enemies,
// then projectiles.
func (w *World) Draw(rt RenderTarget) {
	w.player.Draw(rt)
	for _, enemy := range w.enemies {
		enemy.Draw(rt)
	}
	for _, p := range w.projectiles {
		p.Draw(rt)
	}
}

// EnemyCount returns the number of live enemies.
func (w *World) EnemyCount() int {
	return len(w.enemies)
}

// ProjectileCount returns the number of live projectiles.
func (w *World) ProjectileCount() int {
	return len(w.projectiles)
}
