package game

// levelTransition pairs a score threshold with the factory that takes over
// once the threshold is reached.
type levelTransition struct {
	threshold int
	factory   EntityFactory
}

// State is the session-wide game state: score, level, arena bounds and the
// currently active entity factory. It is an explicit value owned by the World;
// only the simulation step mutates it.
type State struct {
	Score int
	Level int

	ArenaWidth  float64
	ArenaHeight float64

	factory EntityFactory

	// Remaining transitions in threshold order. The default table holds the
	// single space→army switch, so the transition is one-shot and terminal.
	transitions []levelTransition
}

// NewState creates the session state: level 1, score 0, space theme active,
// with the army theme queued behind the configured score threshold.
func NewState(config Config) *State {
	return &State{
		Score:       0,
		Level:       1,
		ArenaWidth:  float64(config.ScreenWidth),
		ArenaHeight: float64(config.ScreenHeight),
		factory:     NewSpaceFactory(),
		transitions: []levelTransition{
			{threshold: config.LevelUpScore, factory: NewArmyFactory()},
		},
	}
}

// ActiveFactory returns the factory spawn and fire commands must use.
func (s *State) ActiveFactory() EntityFactory {
	return s.factory
}

// RecordHit increments the score and, if the next pending threshold is
// reached, advances the level and swaps the active factory. Score never
// decreases and consumed transitions never re-fire.
func (s *State) RecordHit() {
	s.Score++
	if len(s.transitions) > 0 && s.Score >= s.transitions[0].threshold {
		s.factory = s.transitions[0].factory
		s.Level++
		s.transitions = s.transitions[1:]
	}
}
