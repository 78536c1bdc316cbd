package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// mode tracks which screen the shell is on.
type mode int

const (
	modePlaying mode = iota
	modeGameOver
)

// Game is the thin ebiten shell around the simulation: it owns the frame
// clock, the spawn timer and the keyboard, and calls World.Step exactly once
// per frame with the inputs sampled that frame.
type Game struct {
	world    *World
	renderer *Renderer
	keyboard *Keyboard
	config   Config

	mode mode

	// Spawn timer, accumulated from wall-clock deltas. The period is owned
	// here, outside the simulation core.
	spawnTimer     float64
	lastUpdateTime time.Time

	rng *rand.Rand
	log *zap.Logger
}

// NewGame creates a game instance ready for ebiten.RunGame.
func NewGame(config Config, log *zap.Logger) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	game := &Game{
		world:          NewWorld(config, rng, log),
		renderer:       NewRenderer(),
		keyboard:       NewKeyboard(),
		config:         config,
		mode:           modePlaying,
		lastUpdateTime: time.Now(),
		rng:            rng,
		log:            log,
	}
	log.Info("session started",
		zap.Int("arena_width", config.ScreenWidth),
		zap.Int("arena_height", config.ScreenHeight),
		zap.String("theme", string(game.world.State().ActiveFactory().Theme())),
	)
	return game
}

// restart throws the old world away and starts a fresh session, the same way
// the session was first constructed.
func (g *Game) restart() {
	g.log.Info("session restarted", zap.Int("final_score", g.world.State().Score))
	g.world = NewWorld(g.config, g.rng, g.log)
	g.mode = modePlaying
	g.spawnTimer = 0
	g.lastUpdateTime = time.Now()
}

// Update advances one frame. Ebiten calls this at a fixed tick rate.
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps after a stall.
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	if g.mode == modeGameOver {
		if g.keyboard.Restart() {
			g.restart()
		}
		return nil
	}

	in := FrameInput{}
	g.spawnTimer += deltaTime
	if g.spawnTimer >= g.config.SpawnInterval {
		g.spawnTimer -= g.config.SpawnInterval
		in.SpawnEnemy = true
	}
	in.Fire = g.keyboard.Fire()
	in.MoveX, in.MoveY = g.keyboard.Movement()

	if g.world.Step(in) == StatusGameOver {
		g.log.Info("session ended", zap.Int("final_score", g.world.State().Score))
		g.mode = modeGameOver
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	g.world.Draw(g.renderer)
	g.renderer.DrawHUD(g.world.State())
	if g.mode == modeGameOver {
		g.renderer.DrawGameOver(g.world.State(), g.config.ScreenWidth, g.config.ScreenHeight)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
