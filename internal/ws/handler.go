package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quizdeck/trivia-night-backend/internal/session"
	"github.com/quizdeck/trivia-night-backend/internal/types"
)

const writeTimeout = 3 * time.Second

// Handler accepts a WebSocket, registers the connection with the session,
// and pumps frames both ways. One goroutine reads, one writes; the
// session never blocks on either.
func Handler(sess *session.Session, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true, // origin policy is handled by the CORS layer
		})
		if err != nil {
			log.Debug("websocket accept failed", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		connID := uuid.NewString()
		out := make(chan types.ServerMessage, 32)

		sess.Inbox() <- session.Connect{ConnID: connID, Outbox: out}
		defer func() { sess.Inbox() <- session.Disconnect{ConnID: connID} }()

		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for m := range out {
				payload, err := json.Marshal(m)
				if err != nil {
					log.Error("marshal outbound", zap.String("event", m.Event), zap.Error(err))
					continue
				}
				ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
			// Session closed the outbox (shutdown or slow-consumer drop);
			// closing the socket unblocks the read loop below.
			conn.Close(websocket.StatusGoingAway, "closed")
		}()

		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Any other error also ends the connection; the deferred
				// Disconnect runs the roster snapshot path.
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				log.Debug("bad json frame", zap.String("conn", connID))
				continue
			}

			sess.Inbox() <- session.FromClient{ConnID: connID, Msg: cm}
		}
	}
}
