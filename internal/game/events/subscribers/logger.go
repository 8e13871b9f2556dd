package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexTactics/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	// If no filter is set, interested in all events
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Logger()

	level := ls.logLevel
	if level < zerolog.DebugLevel || level > zerolog.ErrorLevel {
		level = zerolog.InfoLevel
	}
	logEvent := eventLogger.WithLevel(level)

	// Add event-specific fields based on type
	switch e := event.(type) {
	case *events.StartTurnEvent:
		logEvent.
			Int("player", int(e.Player)).
			Int("round", e.Round).
			Int("turn", e.Turn)

	case *events.EndTurnEvent:
		logEvent.Int("player", int(e.Player))

	case *events.FundsEvent:
		logEvent.
			Int("player", int(e.Player)).
			Int("amount", e.Amount).
			Int("total", e.Total)

	case *events.UnitRepairEvent:
		logEvent.
			Int("unit_id", int(e.Unit)).
			Int("tile_id", int(e.Tile)).
			Int("amount", e.Amount).
			Int("health", e.Health)

	case *events.TileCapturePointRegenEvent:
		logEvent.
			Int("tile_id", int(e.Tile)).
			Int("capture_points", e.CapturePoints)

	case *events.MoveEvent:
		logEvent.Int("unit_id", int(e.Unit))
		if len(e.Path) > 0 {
			from, to := e.From(), e.To()
			logEvent.
				Int("from_x", from.X).
				Int("from_y", from.Y).
				Int("to_x", to.X).
				Int("to_y", to.Y).
				Int("steps", len(e.Path)-1)
		}

	case *events.BuildEvent:
		logEvent.
			Int("tile_id", int(e.Tile)).
			Int("unit_id", int(e.Unit)).
			Str("unit_type", e.UnitType.String()).
			Int("cost", e.Cost)

	case *events.CaptureEvent:
		logEvent.
			Int("unit_id", int(e.Unit)).
			Int("tile_id", int(e.Tile)).
			Int("capture_points", e.CapturePoints)

	case *events.CapturedEvent:
		logEvent.
			Int("unit_id", int(e.Unit)).
			Int("tile_id", int(e.Tile)).
			Int("owner", int(e.Owner)).
			Int("previous_owner", int(e.PreviousOwner))

	case *events.LoadEvent:
		logEvent.
			Int("unit_id", int(e.Unit)).
			Int("carrier_id", int(e.Carrier))

	case *events.UnloadEvent:
		logEvent.
			Int("unit_id", int(e.Unit)).
			Int("carrier_id", int(e.Carrier)).
			Int("tile_id", int(e.Tile))

	case *events.AttackEvent:
		logEvent.
			Int("attacker_id", int(e.Attacker)).
			Int("target_id", int(e.Target)).
			Int("damage", e.Damage).
			Int("target_health", e.TargetHealth)

	case *events.CounterattackEvent:
		logEvent.
			Int("attacker_id", int(e.Attacker)).
			Int("target_id", int(e.Target)).
			Int("damage", e.Damage).
			Int("target_health", e.TargetHealth)

	case *events.DestroyedEvent:
		logEvent.
			Int("unit_id", int(e.Unit)).
			Int("destroyed_by", int(e.By))

	case *events.WaitEvent:
		logEvent.Int("unit_id", int(e.Unit))

	case *events.DeployEvent:
		logEvent.Int("unit_id", int(e.Unit))

	case *events.UndeployEvent:
		logEvent.Int("unit_id", int(e.Unit))

	case *events.WinGameEvent:
		logEvent.Int("winner", int(e.Player))

	case *events.SurrenderEvent:
		logEvent.Int("player", int(e.Player))
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	// Send the log
	logEvent.Msg("Game event")
}
