package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/repository"
)

// ResultStore keeps the outcomes of finished games.
type ResultStore interface {
	InsertResult(ctx context.Context, params repository.InsertResultParams) (*repository.GameResult, error)
	ListResults(ctx context.Context, limit int) ([]repository.GameResult, error)
}

type GameHandler struct {
	log     logrus.FieldLogger
	ws      *config.WebSocket
	game    *config.Game
	results ResultStore
}

// NewGameHandler builds the game routes. results may be nil, in which case
// finished games are not recorded.
func NewGameHandler(
	log logrus.FieldLogger,
	ws *config.WebSocket,
	game *config.Game,
	results ResultStore,
) *GameHandler {
	return &GameHandler{
		log:     log,
		ws:      ws,
		game:    game,
		results: results,
	}
}

func (h *GameHandler) Connect(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query(), h.game)
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	// Each connection gets its own generator; a shared one is not safe
	// across sessions.
	game, err := mines.NewGame(dto.Height, dto.Width, dto.MineCount, nil)
	if errors.Is(err, mines.ErrInvalidArgument) {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		h.log.WithError(err).Error("unable to create game")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	conn, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.log.WithError(err).Warn("unable to upgrade connection")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(h.ws.ReadLimit)

	s := newSession(conn, game, mines.Delay(h.game.WaveDelay), h.log, h.results)
	s.log.WithFields(logrus.Fields{
		"width":      dto.Width,
		"height":     dto.Height,
		"mine_count": dto.MineCount,
	}).Info("session started")

	if err := s.run(r.Context()); err != nil {
		s.log.WithError(err).Warn("session ended with error")
		return
	}
	s.log.WithField("state", game.State()).Info("session ended")
}

func (h *GameHandler) Results(w http.ResponseWriter, r *http.Request) {
	if h.results == nil {
		sendErrorOrLog(w, h.log, http.StatusServiceUnavailable,
			errors.New("result log is not configured"))
		return
	}

	dto, err := ParseResultsQueryDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	results, err := h.results.ListResults(r.Context(), dto.Limit)
	if err != nil {
		h.log.WithError(err).Error("unable to list results")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []repository.GameResult{}
	}

	sendJSONOrLog(w, h.log, http.StatusOK, results)
}
