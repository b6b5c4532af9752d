package config

import "os"

type Logging struct {
	Development bool

	// File enables a rotated JSON log next to stderr when set.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func NewLogging() (*Logging, error) {
	maxSize, err := lookupInt("LOG_MAX_SIZE_MB", 50)
	if err != nil {
		return nil, err
	}

	maxBackups, err := lookupInt("LOG_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}

	maxAge, err := lookupInt("LOG_MAX_AGE_DAYS", 28)
	if err != nil {
		return nil, err
	}

	cfg := &Logging{
		Development: Development(),
		File:        os.Getenv("LOG_FILE"),
		MaxSizeMB:   maxSize,
		MaxBackups:  maxBackups,
		MaxAgeDays:  maxAge,
	}

	return cfg, nil
}
