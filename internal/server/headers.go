package server

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/asw0210/htmx-demo/pkg/hx"
)

func (s *Server) handleRequestHeaders(c *gin.Context) {
	s.fragment(c, "request-headers", "request_headers.html", gin.H{
		"Headers": hx.RequestHeaders(c.Request),
		"Now":     time.Now(),
	})
}

// handleResponseHeaders renders one fragment and sets the response header
// the requested kind demonstrates. Unknown kinds set nothing.
func (s *Server) handleResponseHeaders(c *gin.Context) {
	kind := c.Param("kind")
	now := time.Now()

	switch kind {
	case "push":
		c.Header(hx.HeaderPushURL, "/?pushed=1")
	case "replace":
		c.Header(hx.HeaderReplaceURL, "/?replaced=1")
	case "location":
		c.Header(hx.HeaderLocation, "/page/about?from=hx-location")
	case "refresh":
		c.Header(hx.HeaderRefresh, "true")
	case "reswap":
		c.Header(hx.HeaderReswap, "beforeend")
	case "retarget":
		c.Header(hx.HeaderRetarget, "#response-retarget")
	case "reselect":
		c.Header(hx.HeaderReselect, "#reselect-snippet")
	case "trigger":
		s.setTriggerHeader(c, hx.HeaderTrigger, "demoEvent", now)
	case "trigger-after-swap":
		s.setTriggerHeader(c, hx.HeaderTriggerAfterSwap, "swapEvent", now)
	case "trigger-after-settle":
		s.setTriggerHeader(c, hx.HeaderTriggerAfterSettle, "settleEvent", now)
	}

	s.fragment(c, "response-headers", "response_headers.html", gin.H{
		"Kind": kind,
		"Now":  now,
	})
}

func (s *Server) setTriggerHeader(c *gin.Context, header, event string, now time.Time) {
	payload, err := hx.TriggerPayload(event, gin.H{"time": now.Format("15:04:05")})
	if err != nil {
		s.logger.Warn("trigger payload encode failed", zap.Error(err))
		return
	}
	c.Header(header, payload)
}

func (s *Server) handleRedirectDemo(c *gin.Context) {
	c.Header(hx.HeaderRedirect, "/page/about")
	c.String(http.StatusOK, "")
}

func (s *Server) handlePreloadInfo(c *gin.Context) {
	s.fragment(c, "preload", "preload_info.html", gin.H{
		"Preloaded": c.GetHeader(hx.HeaderPreloaded),
		"Now":       time.Now(),
	})
}

func (s *Server) handleEventHeader(c *gin.Context) {
	s.fragment(c, "event-header", "event_header.html", gin.H{
		"Header": c.GetHeader("Triggering-Event"),
		"Now":    time.Now(),
	})
}

// handleRequestInfo echoes selected request headers plus whatever form
// params hx-include and hx-vals attached.
func (s *Server) handleRequestInfo(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		s.logger.Debug("request info form parse failed", zap.Error(err))
	}
	s.fragment(c, "request-info", "request_info.html", gin.H{
		"Headers": map[string]string{
			hx.HeaderRequest: c.GetHeader(hx.HeaderRequest),
			hx.HeaderTarget:  c.GetHeader(hx.HeaderTarget),
			hx.HeaderTrigger: c.GetHeader(hx.HeaderTrigger),
			"X-Demo":         c.GetHeader("X-Demo"),
		},
		"Params": c.Request.PostForm,
	})
}

func (s *Server) handleEncodingDemo(c *gin.Context) {
	s.fragment(c, "encoding", "encoding_demo.html", gin.H{
		"ContentType": c.ContentType(),
		"Fields":      formFieldNames(c.Request),
		"Now":         time.Now(),
	})
}

// formFieldNames returns the submitted field names for either form
// encoding. ParseMultipartForm falls back to ParseForm for urlencoded
// bodies, so PostForm covers both.
func formFieldNames(r *http.Request) []string {
	_ = r.ParseMultipartForm(1 << 20)
	names := make([]string, 0, len(r.PostForm))
	for name := range r.PostForm {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Server) handleJSONEnc(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		s.logger.Debug("json-enc body rejected", zap.Error(err))
		payload = nil
	}
	s.fragment(c, "json-enc", "json_enc.html", gin.H{
		"Payload": payload,
		"Now":     time.Now(),
	})
}
