package config

import (
	"fmt"
	"time"
)

type Game struct {
	// WaveDelay is the pause between the waves of a cascade.
	WaveDelay time.Duration
	MaxWidth  int
	MaxHeight int
}

func NewGame() (*Game, error) {
	waveDelay, err := lookupDuration("GAME_WAVE_DELAY", 40*time.Millisecond)
	if err != nil {
		return nil, err
	}
	if waveDelay < 0 {
		return nil, fmt.Errorf("GAME_WAVE_DELAY must not be negative")
	}

	maxWidth, err := lookupInt("GAME_MAX_WIDTH", 64)
	if err != nil {
		return nil, err
	}

	maxHeight, err := lookupInt("GAME_MAX_HEIGHT", 64)
	if err != nil {
		return nil, err
	}

	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf(
			"GAME_MAX_WIDTH and GAME_MAX_HEIGHT must be positive, got %d and %d",
			maxWidth, maxHeight,
		)
	}

	cfg := &Game{
		WaveDelay: waveDelay,
		MaxWidth:  maxWidth,
		MaxHeight: maxHeight,
	}

	return cfg, nil
}
