package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-web/internal/preference"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

type gameUseCase interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (entity.Game, error)
	MakeMove(ctx context.Context, sessionID string, cell int) (entity.Game, error)
	ResetGame(ctx context.Context, sessionID string) (entity.Game, error)
}

type handlerFunc func(ctx context.Context, client *client, msg *Message) error

type Server struct {
	logger *slog.Logger

	game       gameUseCase
	prefs      *preference.Resolver
	sessionTTL time.Duration

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, game gameUseCase, prefs *preference.Resolver, sessionTTL time.Duration) *Server {
	server := &Server{
		logger:     logger.With("component", "websocket"),
		game:       game,
		prefs:      prefs,
		sessionTTL: sessionTTL,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[ActionConnect] = server.handleConnect
	server.handlers[ActionTurn] = server.handleTurn
	server.handlers[ActionReset] = server.handleReset

	return server
}

func (that *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /ws", that.ServeHTTP)
}

// ServeHTTP - upgrades the connection to WebSocket and serves it until it closes.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	header := http.Header{}
	sessionID, ok := pkg.SessionCookie(req)
	if !ok {
		sessionID = pkg.GenerateNewSessionID()
		header.Add("Set-Cookie", pkg.NewSessionCookie(sessionID, that.sessionTTL).String())
		log.Info("session cookie not found, new one created")
	}

	conn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	c := &client{
		conn:      conn,
		sessionID: sessionID,
		prefs:     that.prefs.Resolve(req),
	}

	log.Info("WebSocket connection established")

	if err = that.handleMessages(req.Context(), c); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = that.sendError(c, message.Action, errUnknownAction(message.Action)); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, c, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
			if errors.Is(err, errWrite) {
				return err
			}
		}
	}
}
