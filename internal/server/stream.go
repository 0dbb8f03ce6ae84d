package server

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/asw0210/htmx-demo/pkg/metrics"
)

// handleSSE streams a timestamp fragment as a "message" event until the
// client disconnects.
func (s *Server) handleSSE(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	ticker := time.NewTicker(s.cfg.Demo.SSEInterval)
	defer ticker.Stop()

	emit := func(w io.Writer, t time.Time) bool {
		err := sse.Encode(w, sse.Event{
			Event: "message",
			Data:  fmt.Sprintf("<div class=\"result\">SSE tick %s</div>", t.Format("15:04:05")),
		})
		if err != nil {
			s.logger.Debug("sse encode failed", zap.Error(err))
			return false
		}
		metrics.SSETicks.Inc()
		return true
	}

	// First tick goes out right away so the client sees output before the
	// interval elapses.
	first := true
	c.Stream(func(w io.Writer) bool {
		if first {
			first = false
			return emit(w, time.Now())
		}
		select {
		case <-c.Request.Context().Done():
			return false
		case t := <-ticker.C:
			return emit(w, t)
		}
	})
}

// handleWebSocket upgrades the connection and hands it to the echo loop.
func (s *Server) handleWebSocket(c *gin.Context) {
	s.echo.ServeWS(c.Writer, c.Request)
}
