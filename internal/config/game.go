package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// GameConfig holds settings for the game being played.
type GameConfig struct {
	// StartFEN is the starting position.
	StartFEN string

	// Moves are played in order before any interaction, in coordinate
	// notation ("e2e4").
	Moves []string

	// StopOnError ends a scripted run at the first rejected move instead
	// of reporting it and continuing.
	StopOnError bool
}

// NewGameConfig creates a GameConfig starting from the initial position.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		StartFEN:    engine.InitialFEN,
		StopOnError: true,
	}
}

// Validate checks that the starting position parses.
func (g *GameConfig) Validate() error {
	if _, err := engine.ParseFEN(g.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}
