package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleHello(c *gin.Context) {
	name := c.DefaultQuery("name", "Programmer")
	s.fragment(c, "hello", "hello.html", gin.H{
		"Name": name,
		"Now":  time.Now(),
	})
}

func (s *Server) handleCounter(c *gin.Context) {
	value := s.clicks.Increment()
	s.fragment(c, "counter", "counter.html", gin.H{"Value": value})
}

func (s *Server) handleAnimate(c *gin.Context) {
	value := s.animations.Increment()
	s.fragment(c, "animate", "animate.html", gin.H{"Value": value})
}

// handleSearch answers the debounced search box. When nothing matches we
// rank the catalog by edit distance and offer the closest entries.
func (s *Server) handleSearch(c *gin.Context) {
	q := c.Query("q")
	matches := s.catalog.Search(q)
	var suggestions []string
	if len(matches) == 0 {
		suggestions = s.catalog.Suggest(q, 3)
	}
	s.fragment(c, "search", "search_results.html", gin.H{
		"Query":       q,
		"Matches":     matches,
		"Suggestions": suggestions,
	})
}

func (s *Server) handlePoll(c *gin.Context) {
	s.fragment(c, "poll", "poll.html", gin.H{"Now": time.Now()})
}

func (s *Server) handleLazy(c *gin.Context) {
	s.fragment(c, "lazy", "lazy.html", gin.H{"Now": time.Now()})
}

func (s *Server) handleFragment(c *gin.Context) {
	tab := c.DefaultQuery("tab", "overview")
	s.fragment(c, "fragment", "fragment.html", gin.H{"Tab": tab})
}

func (s *Server) handleOOB(c *gin.Context) {
	s.fragment(c, "oob", "oob.html", gin.H{"Now": time.Now()})
}

func (s *Server) handleSelectDemo(c *gin.Context) {
	s.fragment(c, "select", "select_demo.html", gin.H{"Now": time.Now()})
}

func (s *Server) handleSelectOOB(c *gin.Context) {
	s.fragment(c, "select-oob", "select_oob.html", gin.H{"Now": time.Now()})
}

func (s *Server) handleSyncDemo(c *gin.Context) {
	item := c.DefaultQuery("item", "Alpha")
	time.Sleep(s.cfg.Demo.SyncDelay)
	s.fragment(c, "sync", "sync_demo.html", gin.H{
		"Item": item,
		"Now":  time.Now(),
	})
}

func (s *Server) handleParamsDemo(c *gin.Context) {
	s.fragment(c, "params", "params_demo.html", gin.H{
		"Focus": c.Query("focus"),
		"Debug": c.Query("debug"),
		"Now":   time.Now(),
	})
}

func (s *Server) handlePreserve(c *gin.Context) {
	s.fragment(c, "preserve", "preserve.html", gin.H{"Now": time.Now()})
}

func (s *Server) handleDisabledDemo(c *gin.Context) {
	time.Sleep(s.cfg.Demo.DisabledDelay)
	s.fragment(c, "disabled", "disabled_demo.html", gin.H{"Now": time.Now()})
}

func (s *Server) handleMultiSwap(c *gin.Context) {
	s.fragment(c, "multi-swap", "multi_swap.html", gin.H{"Now": time.Now()})
}

func (s *Server) handleItemDetail(c *gin.Context) {
	s.fragment(c, "item", "item_detail.html", gin.H{
		"ItemID": c.Param("id"),
		"Now":    time.Now(),
	})
}

func (s *Server) handleHeadSupport(c *gin.Context) {
	s.fragment(c, "head-support", "head_support.html", gin.H{"Now": time.Now()})
}

func (s *Server) handleMorphDemo(c *gin.Context) {
	s.fragment(c, "morph", "morph_demo.html", gin.H{
		"Order": s.morphOrder(),
		"Now":   time.Now(),
	})
}

// morphOrder flips the shared toggle and returns the item order for this
// render: natural on odd calls, reversed on even.
func (s *Server) morphOrder() []string {
	s.morphMu.Lock()
	defer s.morphMu.Unlock()
	s.morphFlip = !s.morphFlip
	order := []string{"Alpha", "Beta", "Gamma"}
	if s.morphFlip {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}
	return order
}

func (s *Server) handleStatusDemo(c *gin.Context) {
	now := time.Now()
	if c.Param("mode") == "error" {
		c.HTML(http.StatusUnprocessableEntity, "status_demo.html", gin.H{
			"Status": "Error 422",
			"Now":    now,
		})
		return
	}
	s.fragment(c, "status", "status_demo.html", gin.H{
		"Status": "OK 200",
		"Now":    now,
	})
}

func (s *Server) handleSlow(c *gin.Context) {
	time.Sleep(s.cfg.Demo.SlowDelay)
	s.fragment(c, "slow", "slow.html", gin.H{"Now": time.Now()})
}

func (s *Server) handlePatchDemo(c *gin.Context) {
	s.fragment(c, "patch", "patch_demo.html", gin.H{"Now": time.Now()})
}

// Template lessons. The Python original taught Jinja; these teach the
// equivalent html/template features.

type templateTopic struct {
	Name   string
	Detail string
}

type templateAlert struct {
	Kind    string
	Message string
}

var templateTopics = []templateTopic{
	{Name: "Context variables", Detail: "Render server data into HTML."},
	{Name: "Conditionals", Detail: "Branch templates with if/else."},
	{Name: "Loops", Detail: "Repeat UI fragments for lists."},
}

var templateAlerts = []templateAlert{
	{Kind: "success", Message: "Shared blocks keep fragments consistent."},
	{Kind: "warning", Message: "A single layout keeps your pages DRY."},
	{Kind: "info", Message: "Blocks can be reused across partials."},
}

func (s *Server) handleTemplateDemo(c *gin.Context) {
	s.fragment(c, "template", "template_demo.html", gin.H{
		"Topics":  templateTopics,
		"ShowTip": true,
		"Now":     time.Now(),
	})
}

func (s *Server) handleTemplateBlocks(c *gin.Context) {
	s.fragment(c, "template-blocks", "template_blocks.html", gin.H{
		"Alerts": templateAlerts,
		"Now":    time.Now(),
	})
}

func (s *Server) handleTemplateLayout(c *gin.Context) {
	s.fragment(c, "template-layout", "template_layout.html", gin.H{
		"Title": "Inherited Fragment",
		"Body":  "This fragment wraps a shared frame and fills its slots.",
		"Now":   time.Now(),
	})
}
