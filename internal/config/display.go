package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DisplayConfig holds settings related to drawing the board.
type DisplayConfig struct {
	// Mode selects the front end.
	Mode UIMode

	// Unicode draws pieces as chess glyphs instead of letters.
	Unicode bool

	// Coordinates prints file letters and rank numbers around the board.
	Coordinates bool

	// SVGPath, when set, receives an SVG diagram of the final position.
	SVGPath string

	// SVGSquareSize is the side of one square in the SVG diagram, in pixels.
	SVGSquareSize int

	// JSONFormat writes the game record as JSON instead of text.
	JSONFormat bool

	// Hyphenated writes moves as e2-e4 and e4xd5 instead of e2e4.
	Hyphenated bool

	// MaxLineLength wraps the move list.
	MaxLineLength int
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Mode:          UIText,
		Coordinates:   true,
		SVGSquareSize: 60,
		MaxLineLength: 80,
	}
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	if d.SVGSquareSize < 8 || d.SVGSquareSize > 512 {
		return fmt.Errorf("SVG square size %d out of range 8-512: %w", d.SVGSquareSize, errors.ErrInvalidConfig)
	}
	if d.MaxLineLength < 20 {
		return fmt.Errorf("max line length %d is below 20: %w", d.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
