package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/app"
	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/logging"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func main() {
	bootLog := logrus.New()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		bootLog.Fatal("unable to load .env: ", err)
	}

	logCfg, err := config.NewLogging()
	if err != nil {
		bootLog.Fatal("unable to read logging config: ", err)
	}

	log, err := logging.New(logCfg, os.Stderr)
	if err != nil {
		bootLog.Fatal("unable to set up logging: ", err)
	}

	mines.Log = log

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	log.WithField("development", logCfg.Development).Info("starting up")

	if err := app.New(log).Start(ctx); err != nil {
		log.Fatal("exit reason: ", err)
	}
}
