package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asw0210/htmx-demo/internal/guide"
)

// handleHome renders the demo index with the feature guide, the seeded
// todos, and a catalog preview.
func (s *Server) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Now":       time.Now(),
		"Guides":    guide.Demos(),
		"GuideKeys": guide.Keys(),
		"TodoView": gin.H{
			"Todos": s.todos.List(),
			"Error": "",
		},
		"SearchView": gin.H{
			"Query":   "",
			"Matches": s.catalog.Search(""),
		},
	})
}

func (s *Server) handleAbout(c *gin.Context) {
	c.HTML(http.StatusOK, "page.html", gin.H{"Title": "About This Demo"})
}

// handleAsyncDashboard starts a fresh run and renders the dashboard shell
// that polls for its tiles.
func (s *Server) handleAsyncDashboard(c *gin.Context) {
	runID := s.dash.StartRun()
	c.HTML(http.StatusOK, "async_dashboard.html", gin.H{"RunID": runID})
}

// handleDashboardPoll returns the tiles past the supplied offset. A stale or
// unknown run id renders an empty, done response so the page stops polling.
func (s *Server) handleDashboardPoll(c *gin.Context) {
	runID := c.Query("run_id")
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}

	tiles, next, done := s.dash.Poll(runID, offset)
	s.fragment(c, "async-dashboard", "async_tiles.html", gin.H{
		"Tiles":      tiles,
		"Done":       done,
		"NextOffset": next,
		"RunID":      runID,
	})
}
