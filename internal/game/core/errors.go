package core

import (
	"errors"
	"fmt"
)

var (
	ErrUnitNotFound       = errors.New("unit not found")
	ErrTileNotFound       = errors.New("tile not found")
	ErrOwnerNotInTurn     = errors.New("owner not in turn")
	ErrUnitAlreadyMoved   = errors.New("unit already moved")
	ErrGameAlreadyStarted = errors.New("game already started")
	ErrGameNotInProgress  = errors.New("game not in progress")
	ErrInvalidPath        = errors.New("invalid path")
	ErrCannotBuild        = errors.New("cannot build")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrCannotCapture      = errors.New("cannot capture")
	ErrCannotDeploy       = errors.New("cannot deploy")
	ErrCannotUndeploy     = errors.New("cannot undeploy")
	ErrCannotLoad         = errors.New("cannot load")
	ErrCannotUnload       = errors.New("cannot unload")
	ErrCannotAttack       = errors.New("cannot attack")
	ErrInternal           = errors.New("internal error")
	ErrInvalidMap         = errors.New("invalid map")
)

// WrapActionError adds the acting player and action description to err.
func WrapActionError(player PlayerNumber, action string, err error) error {
	if err == nil {
		return nil
	}
	if action == "" {
		action = "action"
	}
	return fmt.Errorf("player %d: %s: %w", player, action, err)
}

// WrapGameStateError adds turn and phase context to err.
func WrapGameStateError(turn int, phase string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("game turn %d [%s]: %w", turn, phase, err)
}

// WrapPlayerError adds player and operation context to err.
func WrapPlayerError(player PlayerNumber, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("player %d %s: %w", player, operation, err)
}
