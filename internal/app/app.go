package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/database"
	"github.com/vancomm/minesweeper-engine/internal/handlers"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/repository"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	log  *logrus.Logger
	db   *pgxpool.Pool
	ws   *config.WebSocket
	game *config.Game
}

func New(log *logrus.Logger) *App {
	return &App{log: log}
}

// setup loads the configuration and, when one is configured, connects to
// the result database.
func (a *App) setup(ctx context.Context) error {
	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	game, err := config.NewGame()
	if err != nil {
		return err
	}
	a.game = game

	db, migrator, err := database.ConnectAndMigrate(ctx)
	if errors.Is(err, config.ErrNoDatabase) {
		a.log.Warn("no database configured, game results will not be recorded")
		return nil
	}
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	a.db = db

	version, dirty, err := migrator.Version()
	if err == nil {
		a.log.WithFields(logrus.Fields{
			"version": version,
			"dirty":   dirty,
		}).Info("database schema ready")
	}
	migrator.Close()

	return nil
}

func (a *App) Start(ctx context.Context) error {
	if err := a.setup(ctx); err != nil {
		return err
	}
	if a.db != nil {
		defer a.db.Close()
	}

	addr := config.Addr()
	server := &http.Server{
		Addr:    addr,
		Handler: a.handler(),
		// Open websocket sessions end with the base context.
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.WithFields(logrus.Fields{
		"addr":       addr,
		"wave_delay": a.game.WaveDelay,
	}).Info("server listening")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (a *App) handler() http.Handler {
	var h http.Handler = a.routes()
	if base := config.BasePath(); base != "" {
		h = http.StripPrefix(base, h)
	}
	return middleware.Wrap(
		h,
		middleware.Logging(a.log),
		middleware.Cors(),
	)
}

// results returns nil unless a database is connected.
func (a *App) results() handlers.ResultStore {
	if a.db == nil {
		return nil
	}
	return repository.New(a.db)
}
