package viewer

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lyra-docs/lyra/internal/explainer"
	"github.com/lyra-docs/lyra/internal/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn serializes writes; gorilla connections allow one writer at a time.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsConn) send(resp explainResponse) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(resp); err != nil {
		logger.L.WithError(err).Debug("websocket write")
		return false
	}
	return true
}

// handleWebSocket runs explain requests sent as {"code": ...} messages. Each
// accepted request yields two snapshots: the loading state right after the
// submit, then the final state. Rejected requests, including a submit while
// one is in flight, yield one snapshot.
func (v *Viewer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sess := v.sessions.FromRequest(w, r)
	ctx := explainContext(r, sess)
	log := logger.G(ctx)

	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade")
		return
	}
	conn := &wsConn{conn: c}

	var running sync.WaitGroup
	defer func() {
		running.Wait()
		c.Close()
	}()

	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("websocket read")
			}
			return
		}

		var req explainRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			if !conn.send(explainResponse{Error: "invalid message format"}) {
				return
			}
			continue
		}

		pending, err := sess.Explainer.Begin(req.Code)
		if err != nil {
			if !errors.Is(err, explainer.ErrEmptyInput) && !errors.Is(err, explainer.ErrInFlight) {
				log.WithError(err).Error("starting explain request")
			}
			if !conn.send(newExplainResponse(sess.Explainer.State())) {
				return
			}
			continue
		}

		// The request runs even if the client goes away so the session does
		// not stay loading.
		sent := conn.send(newExplainResponse(sess.Explainer.State()))
		running.Add(1)
		go func() {
			defer running.Done()
			st, _ := pending.Run(ctx)
			if sent {
				conn.send(newExplainResponse(st))
			}
		}()
		if !sent {
			return
		}
	}
}
