package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/repository"
)

const (
	outboxSize        = 256
	maxRecordAttempts = 3
)

// session owns one game for the lifetime of one websocket connection.
// Engine calls and listener callbacks all happen on the read loop; the
// write loop is the only writer to the connection.
type session struct {
	id        uuid.UUID
	conn      *websocket.Conn
	game      *mines.Game
	pace      mines.Pacer
	log       *logrus.Entry
	results   ResultStore
	out       chan any
	done      <-chan struct{}
	startedAt time.Time
	endedAt   time.Time
	recorded  bool
}

func newSession(
	conn *websocket.Conn,
	game *mines.Game,
	pace mines.Pacer,
	log logrus.FieldLogger,
	results ResultStore,
) *session {
	id := uuid.New()
	s := &session{
		id:        id,
		conn:      conn,
		game:      game,
		pace:      pace,
		log:       log.WithField("session", id),
		results:   results,
		out:       make(chan any, outboxSize),
		startedAt: time.Now().UTC(),
	}

	for i := range game.Rows() {
		for j := range game.Cols() {
			// (i, j) is always in bounds, so the error is nil.
			_ = game.SetCellListener(i, j, func(v mines.CellView) {
				s.emit(cellMessage{Type: "cell", Row: i, Col: j, Cell: v})
			})
		}
	}
	game.AddStateListener(func(st mines.State) {
		s.endedAt = time.Now().UTC()
		s.emit(stateMessage{Type: "state", State: st})
	})

	return s
}

// emit queues m for the writer. It gives up once the session is torn down
// so a dead writer never blocks the engine.
func (s *session) emit(m any) {
	select {
	case s.out <- m:
	case <-s.done:
	}
}

func (s *session) run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	s.done = gctx.Done()

	go func() {
		<-gctx.Done()
		s.conn.Close()
	}()

	s.emit(helloMessage{
		Type:      "hello",
		SessionID: s.id,
		Rows:      s.game.Rows(),
		Cols:      s.game.Cols(),
		MineCount: s.game.MineCount(),
	})

	g.Go(s.writeLoop)
	g.Go(func() error {
		defer close(s.out)
		return s.readLoop(gctx)
	})

	return g.Wait()
}

func (s *session) writeLoop() error {
	for m := range s.out {
		if err := s.conn.WriteJSON(m); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) readLoop(ctx context.Context) error {
	for {
		mt, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		if mt != websocket.TextMessage {
			continue
		}
		for _, line := range splitCommands(string(message)) {
			s.log.WithField("command", line).Debug("received command")
			if err := s.execute(line); err != nil {
				s.emit(errorMessage{Type: "error", Error: err.Error()})
			}
		}
		if s.game.State().Terminal() && !s.recorded {
			s.recorded = true
			s.record(ctx)
		}
	}
}

func (s *session) execute(line string) error {
	cmd, err := parseCommand(line)
	if err != nil {
		return err
	}
	switch cmd.name {
	case "o":
		return s.game.Reveal(cmd.row, cmd.col, s.pace)
	case "f":
		return s.game.ToggleFlag(cmd.row, cmd.col)
	case "g":
		s.emit(snapshotMessage{
			Type:     "snapshot",
			State:    s.game.State(),
			SafeLeft: s.game.SafeLeft(),
			Flags:    s.game.Flags(),
			Board:    s.game.Snapshot(),
		})
		return nil
	}
	return errors.New("invalid command")
}

// record stores the outcome of a finished game. Failures are logged and
// never reach the player.
func (s *session) record(ctx context.Context) {
	if s.results == nil {
		return
	}
	params := repository.InsertResultParams{
		ResultID:  s.id,
		Width:     s.game.Cols(),
		Height:    s.game.Rows(),
		MineCount: s.game.MineCount(),
		Won:       s.game.State() == mines.Win,
		StartedAt: s.startedAt,
		EndedAt:   s.endedAt,
	}
	for range maxRecordAttempts {
		_, err := s.results.InsertResult(ctx, params)
		if err == nil {
			s.log.WithField("won", params.Won).Info("recorded game result")
			return
		}
		if !repository.IsUniqueViolation(err) {
			s.log.WithError(err).Error("unable to record game result")
			return
		}
		params.ResultID = uuid.New()
	}
	s.log.Error("unable to record game result: result id collisions")
}
