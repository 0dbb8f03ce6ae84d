// Package ws provides the WebSocket echo endpoint for the ws-extension demo.
package ws

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/asw0210/htmx-demo/pkg/metrics"
)

// Echo upgrades connections and returns each received text message wrapped
// in an out-of-band append fragment. Messages are sanitized before they are
// embedded in markup.
type Echo struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader
	policy   *bluemonday.Policy
}

func NewEcho(logger *zap.Logger) *Echo {
	return &Echo{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Demo server; the page and the socket share an origin in
			// every deployment we care about.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		policy: bluemonday.StrictPolicy(),
	}
}

// ServeWS handles a single connection until the client goes away.
func (e *Echo) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := e.upgrader.Upgrade(w, r, nil)
	if err != nil {
		e.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				e.logger.Debug("websocket closed unexpectedly", zap.Error(err))
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		reply := e.Fragment(string(payload), time.Now())
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			e.logger.Debug("websocket write failed", zap.Error(err))
			return
		}
		metrics.WSMessages.Inc()
	}
}

// Fragment builds the out-of-band reply markup for one message.
func (e *Echo) Fragment(message string, now time.Time) string {
	clean := e.policy.Sanitize(message)
	return fmt.Sprintf(
		`<div id="ws-messages" hx-swap-oob="beforeend"><div class="result">WS %s: %s</div></div>`,
		now.Format("15:04:05"), clean,
	)
}
