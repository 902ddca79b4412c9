package site

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/react-guide/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveMessage is the outgoing WebSocket message format.
type liveMessage struct {
	Type  string            `json:"type"` // "state" or "error"
	State *session.Snapshot `json:"state,omitempty"`
	Error string            `json:"error,omitempty"`
}

// handleWebSocket applies each inbound event to the visitor's session and
// answers with the resulting state.
func (s *Site) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	conn, err := upgrader.Upgrade(w, r, w.Header())
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	log := s.logger.With().Str("visitor", sess.ID()).Logger()
	snap := sess.Snapshot()
	if err := conn.WriteJSON(liveMessage{Type: "state", State: &snap}); err != nil {
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("websocket read")
			}
			return
		}

		var ev session.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			if s.sendError(conn, "invalid message format") != nil {
				return
			}
			continue
		}

		// Each event counts as activity so a live socket keeps its session.
		sess = s.sessions.Get(sess.ID(), "")
		snap, err := sess.Dispatch(ev)
		if err != nil {
			log.Debug().Err(err).Str("event", string(ev.Type)).Msg("event rejected")
			if s.sendError(conn, err.Error()) != nil {
				return
			}
			if errors.Is(err, session.ErrClosed) {
				return
			}
			continue
		}
		if err := conn.WriteJSON(liveMessage{Type: "state", State: &snap}); err != nil {
			log.Warn().Err(err).Msg("websocket write")
			return
		}
	}
}

func (s *Site) sendError(conn *websocket.Conn, message string) error {
	return conn.WriteJSON(liveMessage{Type: "error", Error: message})
}
