package game

import (
	"fmt"

	"github.com/mitchelldurbincs/HexTactics/internal/config"
	"github.com/mitchelldurbincs/HexTactics/internal/game/rules"
)

// Default balance constants
const (
	DefaultFundsPerTile     = 100
	DefaultCaptureRegenRate = 5
	DefaultRepairRate       = 2
)

// Rules holds the balance constants applied by the turn controller and combat
type Rules struct {
	// FundsPerTile is paid per fully held fund-generating tile at start of turn.
	FundsPerTile int `json:"funds_per_tile"`
	// CaptureRegenRate is how many capture points an owned tile recovers per turn.
	CaptureRegenRate int `json:"capture_regen_rate"`
	// RepairRate is how much health a unit on repair terrain recovers per turn.
	RepairRate int `json:"repair_rate"`
	// DefenseStep is the damage reduction percentage per terrain defense star.
	DefenseStep int `json:"defense_step"`
}

// DefaultRules returns the standard balance constants
func DefaultRules() Rules {
	return Rules{
		FundsPerTile:     DefaultFundsPerTile,
		CaptureRegenRate: DefaultCaptureRegenRate,
		RepairRate:       DefaultRepairRate,
		DefenseStep:      rules.DefaultDefenseStep,
	}
}

// RulesFromConfig converts loaded configuration into Rules
func RulesFromConfig(c config.RulesConfig) Rules {
	return Rules{
		FundsPerTile:     c.FundsPerTile,
		CaptureRegenRate: c.CaptureRegenRate,
		RepairRate:       c.RepairRate,
		DefenseStep:      c.DefenseStepPercent,
	}
}

// Validate rejects negative rates and out of range defense steps
func (r Rules) Validate() error {
	switch {
	case r.FundsPerTile < 0:
		return fmt.Errorf("funds per tile must be non-negative, got %d", r.FundsPerTile)
	case r.CaptureRegenRate < 0:
		return fmt.Errorf("capture regen rate must be non-negative, got %d", r.CaptureRegenRate)
	case r.RepairRate < 0:
		return fmt.Errorf("repair rate must be non-negative, got %d", r.RepairRate)
	case r.DefenseStep < 0 || r.DefenseStep > 100:
		return fmt.Errorf("defense step must be between 0 and 100, got %d", r.DefenseStep)
	}
	return nil
}
