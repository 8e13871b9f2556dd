package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
	"github.com/mitchelldurbincs/HexTactics/internal/game/events"
	"github.com/mitchelldurbincs/HexTactics/internal/game/rules"
	"github.com/mitchelldurbincs/HexTactics/internal/game/states"
)

// Game is the aggregate root of one match. It is not safe for concurrent
// use; callers serialize every operation on a given instance.
type Game struct {
	id         string
	rules      Rules
	combat     rules.Combat
	win        *rules.WinConditionChecker
	production *ProductionManager
	machine    *states.Machine
	logger     zerolog.Logger

	tiles     map[core.TileID]core.Tile
	tileOrder []core.TileID
	byPos     map[core.Position]core.TileID
	units     map[core.UnitID]core.Unit
	unitTile  map[core.UnitID]core.TileID
	bounds    core.Rect

	players    []core.Player // index is player number - 1
	active     int           // index into players, -1 when nobody is in turn
	round      int
	turn       int
	nextUnitID core.UnitID
}

// Option configures a Game at construction
type Option func(*options)

type options struct {
	id     string
	logger zerolog.Logger
	rules  Rules
}

// WithLogger sets the logger the game and its components derive from
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithID sets the game id stamped on every event
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// WithRules overrides the default balance constants
func WithRules(r Rules) Option {
	return func(o *options) { o.rules = r }
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop(), rules: DefaultRules()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	return o
}

// New constructs a game in Pregame from an initial map and the ordered
// external user ids of its participants. Player numbers are assigned 1..N in
// that order and every player starts with the map's starting funds.
func New(m Map, userIDs []int64, opts ...Option) (*Game, error) {
	o := buildOptions(opts)
	if err := o.rules.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidMap, err)
	}
	if len(userIDs) == 0 {
		return nil, fmt.Errorf("%w: no players", core.ErrInvalidMap)
	}
	if m.StartingFunds < 0 {
		return nil, fmt.Errorf("%w: negative starting funds %d", core.ErrInvalidMap, m.StartingFunds)
	}

	g := newGame(o)
	if err := g.load(m.Tiles, m.Units, len(userIDs)); err != nil {
		return nil, err
	}

	g.players = make([]core.Player, len(userIDs))
	for i, uid := range userIDs {
		g.players[i] = core.Player{
			Number: core.PlayerNumber(i + 1),
			UserID: uid,
			Funds:  m.StartingFunds,
			Alive:  true,
		}
	}

	g.logger.Info().
		Int("players", len(g.players)).
		Int("tiles", len(g.tiles)).
		Int("units", len(g.units)).
		Msg("Game created")
	return g, nil
}

func newGame(o options) *Game {
	logger := o.logger.With().Str("component", "Game").Str("game_id", o.id).Logger()
	return &Game{
		id:         o.id,
		rules:      o.rules,
		combat:     rules.NewCombat(o.rules.DefenseStep),
		win:        rules.NewWinConditionChecker(logger),
		production: NewProductionManager(o.rules, o.id, logger),
		machine:    states.NewMachine(states.PhasePregame, logger),
		logger:     logger,
		active:     -1,
	}
}

// requireInProgress fails unless the game is accepting actions.
func (g *Game) requireInProgress() error {
	phase := g.machine.Current()
	if !phase.CanReceiveActions() || g.active < 0 {
		return core.WrapGameStateError(g.turn, phase.String(), core.ErrGameNotInProgress)
	}
	return nil
}

// execute runs one operation in its own batch. Nothing is committed or
// emitted when fn fails.
func (g *Game) execute(sink events.Sink, action string, fn func(b *batch) error) error {
	if err := g.requireInProgress(); err != nil {
		return err
	}
	b := g.begin()
	player := b.activePlayer().Number
	if err := fn(b); err != nil {
		g.logger.Warn().
			Err(err).
			Int("player", int(player)).
			Str("action", action).
			Msg("Action rejected")
		return err
	}
	if err := b.commit(sink); err != nil {
		return err
	}
	g.logger.Debug().
		Int("player", int(player)).
		Str("action", action).
		Int("events", len(b.events)).
		Msg("Action applied")
	return nil
}
