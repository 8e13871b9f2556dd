package processor

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
	"github.com/mitchelldurbincs/HexTactics/internal/game/events"
)

// ActionProcessor authorizes player requests and hands them to the game
type ActionProcessor struct {
	logger zerolog.Logger
}

// NewActionProcessor creates a new action processor
func NewActionProcessor(logger zerolog.Logger) *ActionProcessor {
	return &ActionProcessor{
		logger: logger.With().Str("component", "ActionProcessor").Logger(),
	}
}

// Process applies one action. Requests from anyone but the player in turn
// are refused with core.ErrOwnerNotInTurn before the game sees them.
func (ap *ActionProcessor) Process(ctx context.Context, ex Executor, sink events.Sink, action Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	player := action.PlayerNumber()
	logger := ap.logger.With().Int("player", int(player)).Str("action", action.Type()).Logger()

	active, ok := ex.ActivePlayer()
	if !ok {
		err := core.WrapActionError(player, action.Type(), core.ErrGameNotInProgress)
		logger.Warn().Err(err).Msg("Action received outside play")
		return err
	}
	if active.Number != player {
		err := core.WrapActionError(player, action.Type(), core.ErrOwnerNotInTurn)
		logger.Warn().Err(err).Int("active_player", int(active.Number)).Msg("Action from player not in turn")
		return err
	}

	if err := action.Apply(ex, sink); err != nil {
		wrapped := core.WrapActionError(player, action.Type(), err)
		logger.Warn().Err(wrapped).Msg("Action rejected")
		return wrapped
	}
	logger.Debug().Msg("Action applied")
	return nil
}

// ProcessActions applies actions in order. A rejected action does not stop
// the ones after it; the first rejection is returned. Cancellation stops
// processing between actions.
func (ap *ActionProcessor) ProcessActions(ctx context.Context, ex Executor, sink events.Sink, actions []Action) error {
	var encounteredError error
	applied := 0
	for _, action := range actions {
		select {
		case <-ctx.Done():
			ap.logger.Warn().Err(ctx.Err()).Int("applied", applied).Msg("Action processing interrupted by context cancellation")
			return ctx.Err()
		default:
		}

		if err := ap.Process(ctx, ex, sink, action); err != nil {
			if encounteredError == nil {
				encounteredError = err
			}
			continue
		}
		applied++
	}

	ap.logger.Debug().Int("actions", len(actions)).Int("applied", applied).Msg("Processed actions")
	return encounteredError
}
