package handlers

import (
	"fmt"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

var decoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

type NewGameDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

// ParseNewGameDTO decodes the connect query and checks it against the
// configured board limits. Mine count validity is left to the engine.
func ParseNewGameDTO(src map[string][]string, limits *config.Game) (NewGameDTO, error) {
	var dto NewGameDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return dto, err
	}
	if dto.Width < 1 || dto.Width > limits.MaxWidth {
		return dto, fmt.Errorf("width must be between 1 and %d", limits.MaxWidth)
	}
	if dto.Height < 1 || dto.Height > limits.MaxHeight {
		return dto, fmt.Errorf("height must be between 1 and %d", limits.MaxHeight)
	}
	return dto, nil
}

const (
	defaultResultsLimit = 20
	maxResultsLimit     = 100
)

type ResultsQueryDTO struct {
	Limit int `schema:"limit"`
}

func ParseResultsQueryDTO(src map[string][]string) (ResultsQueryDTO, error) {
	dto := ResultsQueryDTO{Limit: defaultResultsLimit}
	if err := decoder.Decode(&dto, src); err != nil {
		return dto, err
	}
	if dto.Limit < 1 || dto.Limit > maxResultsLimit {
		return dto, fmt.Errorf("limit must be between 1 and %d", maxResultsLimit)
	}
	return dto, nil
}
