package config

import "os"

// Addr is the listen address of the HTTP server.
func Addr() string {
	if addr, ok := os.LookupEnv("APP_ADDR"); ok && addr != "" {
		return addr
	}
	return ":8080"
}

// BasePath is stripped from request paths when the server sits behind a
// prefix-routing proxy.
func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
