package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Mode is the session's top-level state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Rules are the tunable gameplay numbers.
type Rules struct {
	Difficulty config.Difficulty
	Speeds     config.DifficultyTable
	FoodPoints int
}

// DefaultRules returns slow difficulty, the 10/6/3 table and 10 points per food.
func DefaultRules() Rules {
	return Rules{
		Difficulty: config.DifficultySlow,
		Speeds:     config.DefaultDifficultyTable(),
		FoodPoints: 10,
	}
}

// RulesFromConfig extracts the gameplay rules from a loaded config.
func RulesFromConfig(cfg config.SnakeConfig) Rules {
	return Rules{
		Difficulty: cfg.Difficulty.Default,
		Speeds:     cfg.Difficulty.TicksPerMove,
		FoodPoints: cfg.Scoring.FoodPoints,
	}
}

// Session owns one snake, one food item and the menu/playing/game-over
// state machine. It is driven by a single control loop and is not safe for
// concurrent use.
type Session struct {
	grid  Grid
	rng   *rand.Rand
	snake *Snake
	food  *Food

	mode         Mode
	difficulty   config.Difficulty
	speeds       config.DifficultyTable
	foodPoints   int
	score        int
	speedCounter int    // Ticks since the last move
	tick         uint64 // Advance calls made while playing

	// roundOver is set once a round has ended in GameOver and cleared by
	// Reset, so that starting from the menu never resumes a dead snake.
	roundOver bool
}

// NewSession creates a session in menu mode with a fresh snake and food.
// A zero board size falls back to core.DefaultConfig.
func NewSession(cfg core.RuntimeConfig, rules Rules) *Session {
	if cfg.GridW <= 0 || cfg.GridH <= 0 {
		def := core.DefaultConfig()
		cfg.GridW, cfg.GridH = def.GridW, def.GridH
	}
	grid := NewGrid(cfg.GridW, cfg.GridH)
	rng := rand.New(rand.NewSource(cfg.Seed))

	s := &Session{
		grid:       grid,
		rng:        rng,
		snake:      NewSnake(grid),
		food:       NewFood(grid, rng),
		mode:       ModeMenu,
		difficulty: rules.Difficulty,
		speeds:     rules.Speeds,
		foodPoints: rules.FoodPoints,
	}
	if !s.difficulty.Valid() {
		s.difficulty = config.DifficultySlow
	}
	//nolint:errcheck // A one-cell snake never fills a valid board
	s.food.Relocate(s.snake.Positions())
	return s
}

// Reset starts a new round: new snake, new food, zero score and counter.
// Difficulty is kept.
func (s *Session) Reset() {
	s.snake.Reset()
	//nolint:errcheck // A one-cell snake never fills a valid board
	s.food.Relocate(s.snake.Positions())
	s.score = 0
	s.speedCounter = 0
	s.roundOver = false
	s.mode = ModePlaying
}

// Apply feeds one intent to the state machine.
// Intents that mean nothing in the current mode are ignored.
func (s *Session) Apply(a core.Action) {
	switch s.mode {
	case ModeMenu:
		s.applyMenu(a)
	case ModePlaying:
		s.applyPlaying(a)
	case ModeGameOver:
		s.applyGameOver(a)
	}
}

func (s *Session) applyMenu(a core.Action) {
	if d, ok := difficultyFor(a); ok {
		s.difficulty = d
		s.start()
		return
	}
	if a == core.ActionStart {
		s.start()
	}
}

func (s *Session) applyPlaying(a core.Action) {
	if dir, ok := directionFor(a); ok {
		s.snake.ChangeDirection(dir)
		return
	}
	if d, ok := difficultyFor(a); ok {
		s.difficulty = d
		return
	}
	switch a {
	case core.ActionRestart:
		s.Reset()
	case core.ActionToMenu:
		s.mode = ModeMenu
	}
}

func (s *Session) applyGameOver(a core.Action) {
	switch a {
	case core.ActionRestart:
		s.Reset()
	case core.ActionToMenu:
		s.mode = ModeMenu
	}
}

// start leaves the menu. A round abandoned mid-play resumes; a finished one is replaced.
func (s *Session) start() {
	if s.roundOver {
		s.Reset()
		return
	}
	s.mode = ModePlaying
}

// Advance runs one fixed-rate tick. Outside of play it does nothing.
// While playing it commits the buffered direction and, once every
// TicksPerMove ticks, moves the snake exactly one cell.
func (s *Session) Advance() core.StepResult {
	if s.mode != ModePlaying {
		return core.StepResult{State: s.State()}
	}
	s.tick++

	s.snake.CommitDirection()

	s.speedCounter++
	if s.speedCounter < s.TicksPerMove() {
		return core.StepResult{State: s.State()}
	}
	s.speedCounter = 0

	if !s.snake.Move() {
		s.endRound()
		return core.StepResult{State: s.State()}
	}

	ate := false
	if s.snake.Head() == s.food.Position() {
		ate = true
		s.snake.Grow()
		s.score += s.foodPoints
		if err := s.food.Relocate(s.snake.Positions()); errors.Is(err, ErrGridFull) {
			// The snake covers the whole board; nothing is left to play for.
			s.endRound()
		}
	}

	return core.StepResult{State: s.State(), Moved: true, Ate: ate}
}

// Step applies a frame of intents in arrival order, then advances one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		s.Apply(a)
	}
	return s.Advance()
}

func (s *Session) endRound() {
	s.mode = ModeGameOver
	s.roundOver = true
}

// SetDifficultyTable swaps in a new ticks-per-move table, e.g. after a config
// reload. Like a difficulty change, it applies from the next counter comparison.
func (s *Session) SetDifficultyTable(t config.DifficultyTable) {
	s.speeds = t
}

// SetFoodPoints changes the score awarded per food from now on.
func (s *Session) SetFoodPoints(points int) {
	s.foodPoints = points
}

// TicksPerMove returns the move interval for the current difficulty.
func (s *Session) TicksPerMove() int {
	if n := s.speeds.TicksPerMove(s.difficulty); n > 0 {
		return n
	}
	return 1
}

// State returns the coarse game state for the platform layer.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		InMenu:   s.mode == ModeMenu,
		GameOver: s.mode == ModeGameOver,
	}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Difficulty returns the selected difficulty.
func (s *Session) Difficulty() config.Difficulty { return s.difficulty }

// SpeedCounter returns the ticks counted towards the next move.
func (s *Session) SpeedCounter() int { return s.speedCounter }

// Tick returns how many ticks have been advanced while playing.
func (s *Session) Tick() uint64 { return s.tick }

// Grid returns the board.
func (s *Session) Grid() Grid { return s.grid }

func difficultyFor(a core.Action) (config.Difficulty, bool) {
	switch a {
	case core.ActionSelectSlow:
		return config.DifficultySlow, true
	case core.ActionSelectFast:
		return config.DifficultyFast, true
	case core.ActionSelectVeryFast:
		return config.DifficultyVeryFast, true
	}
	return "", false
}
