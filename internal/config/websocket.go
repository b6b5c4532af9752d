package config

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader

	// ReadLimit caps the size of a single client frame.
	ReadLimit int64
}

func NewWebSocket() (*WebSocket, error) {
	handshakeTimeout, err := lookupDuration("WS_HANDSHAKE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	readLimit, err := lookupInt("WS_READ_LIMIT", 4096)
	if err != nil {
		return nil, err
	}

	upgrader := websocket.Upgrader{
		HandshakeTimeout: handshakeTimeout,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader:  upgrader,
		ReadLimit: int64(readLimit),
	}

	return ws, nil
}
