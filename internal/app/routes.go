package app

import (
	"net/http"

	"github.com/vancomm/minesweeper-engine/internal/handlers"
)

func (a *App) routes() *http.ServeMux {
	router := http.NewServeMux()

	game := handlers.NewGameHandler(a.log, a.ws, a.game, a.results())

	router.HandleFunc("GET /healthz", handlers.Health(a.log))
	router.HandleFunc("GET /game/connect", game.Connect)
	router.HandleFunc("GET /results", game.Results)

	return router
}
