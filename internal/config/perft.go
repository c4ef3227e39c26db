package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the perft search depth.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-generation node counting.
type PerftConfig struct {
	// Depth is the number of plies to count; 0 disables perft.
	Depth int

	// Workers is the number of goroutines dividing the root moves.
	Workers int

	// Divide prints the node count below each root move.
	Divide bool
}

// NewPerftConfig creates a PerftConfig with perft disabled and one worker
// per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d out of range 0-%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers must be at least 1, got %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
