package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/HexTactics/internal/config"
	"github.com/mitchelldurbincs/HexTactics/internal/game"
	"github.com/mitchelldurbincs/HexTactics/internal/game/events"
	"github.com/mitchelldurbincs/HexTactics/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/HexTactics/internal/game/mapgen"
	"github.com/mitchelldurbincs/HexTactics/internal/game/processor"
	"github.com/mitchelldurbincs/HexTactics/internal/game/states"
)

// maxActionsPerTurn caps how long the random player dithers before ending its turn.
const maxActionsPerTurn = 40

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", os.Getenv("APP_ENV"), "Environment overlay (config.<env>.yaml)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	seed := flag.Int64("seed", -1, "Random seed (-1 to use config default, 0 for time based)")
	maxTurns := flag.Int("max-turns", -1, "Turn limit (-1 to use config default)")
	color := flag.Bool("color", true, "Colour the rendered board")
	logEvents := flag.Bool("log-events", false, "Log every game event")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}
	if *seed == -1 {
		*seed = cfg.Demo.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *maxTurns == -1 {
		*maxTurns = cfg.Demo.MaxTurns
	}
	setupLogging(*logLevel, cfg.Log.Format)

	if err := run(cfg, *seed, *maxTurns, *color, *logEvents); err != nil {
		log.Fatal().Err(err).Msg("Demo failed")
	}
}

func run(cfg *config.Config, seed int64, maxTurns int, color, logEvents bool) error {
	rng := rand.New(rand.NewSource(seed))
	mc := mapgen.ConfigFromSettings(cfg.Game.Mapgen)
	m, placements, err := mapgen.NewGenerator(mc, rng).GenerateMap()
	if err != nil {
		return fmt.Errorf("generate map: %w", err)
	}

	users := make([]int64, len(placements))
	for i := range users {
		users[i] = int64(i + 1)
	}
	g, err := game.New(m, users,
		game.WithLogger(log.Logger),
		game.WithRules(game.RulesFromConfig(cfg.Game.Rules)),
	)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	log.Info().
		Int64("seed", seed).
		Str("game_id", g.ID()).
		Int("width", mc.Width).
		Int("height", mc.Height).
		Int("players", mc.PlayerCount).
		Msg("Starting demo game")

	bus := events.NewEventBusWithLogger(log.Logger)
	if logEvents {
		bus.Subscribe(subscribers.NewLoggerSubscriber("demo_logger", log.Logger, zerolog.InfoLevel))
	}
	bus.SubscribeFunc(events.TypeWinGame, func(e events.Event) {
		log.Info().Str("event_type", e.Type()).Msg("Winner decided")
	})

	if path := config.ConfigFilePath(); path != "" {
		config.WatchConfig(func(c *config.Config) {
			log.Info().Str("log_level", c.Log.Level).Msg("Config reloaded, changes apply to the next game")
		}, func(err error) {
			log.Warn().Err(err).Msg("Ignoring invalid config reload")
		})
	}

	fmt.Printf("Initial board:\n%s\n", g.Render(color))

	if err := g.Start(bus); err != nil {
		return err
	}

	ap := processor.NewActionProcessor(log.Logger)
	ctx := context.Background()
	actions := 0
	for g.Phase() == states.PhaseInProgress && g.Round() <= maxTurns {
		turn := g.Turn()
		action := game.RandomAction(g, rng)
		if actions >= maxActionsPerTurn {
			if p, ok := g.ActivePlayer(); ok {
				action = &processor.EndTurn{Player: p.Number}
			}
		}
		if err := ap.Process(ctx, g, bus, action); err != nil {
			return err
		}
		actions++
		if g.Turn() != turn {
			actions = 0
		}
	}

	fmt.Printf("\nFinal board (round %d, turn %d, %s):\n%s\n", g.Round(), g.Turn(), g.Phase(), g.Render(color))
	printStats(g)
	return nil
}

func printStats(g *game.Game) {
	fmt.Printf("%-8s %-6s %6s %6s %6s %8s %6s %6s\n", "Player", "Status", "Funds", "Score", "Units", "Army", "Tiles", "Income")
	for _, s := range g.Stats() {
		status := "ALIVE"
		if !s.Alive {
			status = "DEAD"
		}
		fmt.Printf("%-8d %-6s %6d %6d %6d %8d %6d %6d\n",
			s.Player, status, s.Funds, s.Score, s.Units, s.ArmyValue, s.Tiles, s.Income)
	}
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if os.Getenv("APP_ENV") == "production" || strings.EqualFold(format, "json") {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}
