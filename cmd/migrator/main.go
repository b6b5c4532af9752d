package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/database"
)

var log = logrus.New()

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal("unable to load .env: ", err)
	}

	migrator, err := database.Migrate()
	if err != nil {
		log.Fatal(err)
	}

	version, dirty, err := migrator.Version()
	migrator.Close()
	if err != nil {
		log.Error("failed to check migration version: ", err)
		os.Exit(1)
	}
	log.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("migration successful")
}
