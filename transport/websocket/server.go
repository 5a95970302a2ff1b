package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-search/internal/entity"
	"github.com/rocketscienceinc/tictactoe-search/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type sessionUseCase interface {
	StartSession(ctx context.Context, level, humanMark string) (*usecase.Session, *entity.Cell, error)
	SessionTurn(ctx context.Context, session *usecase.Session, cell entity.Cell) (*entity.Cell, error)
	Board(session *usecase.Session) [][]string
}

// connection is one client and the game it is playing.
type connection struct {
	conn    *websocket.Conn
	session *usecase.Session
}

type handlerFunc func(ctx context.Context, client *connection, message *Message) error

type Server struct {
	logger   *slog.Logger
	sessions sessionUseCase
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, sessions sessionUseCase) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionTurn] = server.handleTurn

	return server
}

// Handler - the /ws endpoint.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	if err = that.handleMessages(ctx, &connection{conn: conn}); err != nil {
		log.Info("connection closed", "reason", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, client *connection) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			if err = that.sendError(client, "malformed message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = that.sendError(client, "unknown action "+message.Action); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, client, &message); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}

func (that *Server) sendState(client *connection, reply *entity.Cell) error {
	session := client.session

	view := &GameView{
		Board:  that.sessions.Board(session),
		Turn:   session.State.ToMove,
		Human:  session.Human,
		Level:  session.Level,
		Winner: session.State.Winner(),
	}

	if view.Winner != "" {
		view.Turn = ""
	}

	return that.send(client, actionState, ResponsePayload{Game: view, Reply: reply})
}

func (that *Server) sendError(client *connection, text string) error {
	return that.send(client, actionError, ResponsePayload{Error: text})
}

func (that *Server) send(client *connection, action string, payload ResponsePayload) error {
	if err := client.conn.WriteJSON(response{Action: action, Payload: payload}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
