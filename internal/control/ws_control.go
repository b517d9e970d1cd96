package control

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/frudas24/rotabox/internal/logging"
	"github.com/frudas24/rotabox/internal/session"
	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// Server handles websocket control input.
type Server struct {
	mu         sync.Mutex
	writeMu    sync.Mutex
	upgrader   websocket.Upgrader
	dispatcher *Dispatcher
	conn       *websocket.Conn
	log        *slog.Logger
}

// NewServer creates a control websocket server feeding d.
func NewServer(d *Dispatcher) *Server {
	s := &Server{
		dispatcher: d,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log: logging.Logger().With(slog.String("component", "control")),
	}
	d.SetEmitter(s.write)
	return s
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		s.log.Warn("control connection rejected", slog.Any("err", err))
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)
	s.log.Info("control connected", slog.String("remote", r.RemoteAddr))

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if err := s.dispatcher.Handle(msg); err != nil {
			if errors.Is(err, session.ErrUnknownBox) {
				s.log.Warn("control message rejected", slog.String("t", msg.T), slog.Any("err", err))
				continue
			}
			return
		}
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed and releases any
// gesture it left open.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	s.dispatcher.Cancel()
	_ = conn.Close()
	s.log.Info("control disconnected")
}

// write sends one outbound message to the active connection, if any.
func (s *Server) write(out Outbound) {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(out); err != nil {
		s.log.Debug("control write failed", slog.Any("err", err))
	}
}
