package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
	"github.com/mitchelldurbincs/HexTactics/internal/game/events"
	"github.com/mitchelldurbincs/HexTactics/internal/game/events/subscribers"
)

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())

	// Interested in everything by default
	assert.True(t, logSub.InterestedIn(events.TypeStartTurn))
	assert.True(t, logSub.InterestedIn(events.TypeAttack))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "StartTurnEvent",
			event: events.NewStartTurnEvent("test-game-1", 2, 3, 6),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(2), logLine["player"])
				assert.Equal(t, float64(3), logLine["round"])
				assert.Equal(t, float64(6), logLine["turn"])
			},
		},
		{
			name:  "FundsEvent",
			event: events.NewFundsEvent("test-game-1", 1, 300, 1300),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(300), logLine["amount"])
				assert.Equal(t, float64(1300), logLine["total"])
			},
		},
		{
			name: "MoveEvent",
			event: events.NewMoveEvent("test-game-1", 7, []core.Position{
				{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2},
			}),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(7), logLine["unit_id"])
				assert.Equal(t, float64(1), logLine["from_x"])
				assert.Equal(t, float64(2), logLine["to_y"])
				assert.Equal(t, float64(2), logLine["steps"])
			},
		},
		{
			name:  "BuildEvent",
			event: events.NewBuildEvent("test-game-1", 4, 9, catalog.Tank, 700),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Tank", logLine["unit_type"])
				assert.Equal(t, float64(700), logLine["cost"])
			},
		},
		{
			name:  "AttackEvent",
			event: events.NewAttackEvent("test-game-1", 3, 5, 6, 4),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(3), logLine["attacker_id"])
				assert.Equal(t, float64(5), logLine["target_id"])
				assert.Equal(t, float64(6), logLine["damage"])
				assert.Equal(t, float64(4), logLine["target_health"])
			},
		},
		{
			name:  "CapturedEvent",
			event: events.NewCapturedEvent("test-game-1", 1, 12, 2, 0),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(12), logLine["tile_id"])
				assert.Equal(t, float64(2), logLine["owner"])
				assert.Equal(t, float64(0), logLine["previous_owner"])
			},
		},
		{
			name:  "DestroyedEvent",
			event: events.NewDestroyedEvent("test-game-1", 5, 3),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(5), logLine["unit_id"])
				assert.Equal(t, float64(3), logLine["destroyed_by"])
			},
		},
		{
			name:  "WinGameEvent",
			event: events.NewWinGameEvent("test-game-1", 1),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(1), logLine["winner"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			logSub.HandleEvent(tc.event)

			logOutput := buf.String()
			require.NotEmpty(t, logOutput, "Log output should not be empty")

			var logLine map[string]interface{}
			err := json.Unmarshal([]byte(logOutput), &logLine)
			require.NoError(t, err, "Should be able to parse log output as JSON")

			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, "Game event", logLine["message"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, "test-game-1", logLine["game_id"])

			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("filtered-logger", logger, zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeWinGame, events.TypeSurrender})

	assert.True(t, logSub.InterestedIn(events.TypeWinGame))
	assert.True(t, logSub.InterestedIn(events.TypeSurrender))
	assert.False(t, logSub.InterestedIn(events.TypeStartTurn))
	assert.False(t, logSub.InterestedIn(events.TypeMove))

	// Through a bus, only filtered events reach the subscriber
	bus := events.NewEventBusWithLogger(zerolog.Nop())
	bus.Subscribe(logSub)

	bus.Publish(events.NewStartTurnEvent("game1", 1, 1, 1))
	assert.Empty(t, buf.String())

	bus.Publish(events.NewSurrenderEvent("game1", 1))
	assert.Contains(t, buf.String(), events.TypeSurrender)

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeStartTurn))
}

func TestLoggerSubscriberLogLevels(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel zerolog.Level
		expected string
	}{
		{"Debug", zerolog.DebugLevel, "debug"},
		{"Info", zerolog.InfoLevel, "info"},
		{"Warn", zerolog.WarnLevel, "warn"},
		{"Error", zerolog.ErrorLevel, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(tc.logLevel)

			logSub := subscribers.NewLoggerSubscriber("level-logger", logger, tc.logLevel)
			logSub.HandleEvent(events.NewEndTurnEvent("game1", 1))

			require.NotZero(t, buf.Len())
			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
			assert.Equal(t, tc.expected, logLine["level"])
		})
	}
}

func TestLoggerSubscriberDevelopmentMode(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("dev-logger", logger, zerolog.InfoLevel)
	logSub.SetDevMode(true)

	event := events.NewUnloadEvent("dev-game", 2, 1, 8, core.NewPosition(5, 5))
	logSub.HandleEvent(event)

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))

	eventData, ok := logLine["event_data"].(map[string]interface{})
	require.True(t, ok, "event_data should be an object")
	assert.Equal(t, events.TypeUnload, eventData["type"])
	assert.Equal(t, "dev-game", eventData["game_id"])
	assert.Equal(t, float64(1), eventData["carrier"])
}
