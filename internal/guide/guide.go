// Package guide holds the feature-guide metadata shown on the home page:
// for each demo, the client-side markup, the route it calls, and a short and
// a full listing of the server handler.
package guide

import "sort"

// Demo describes one teaching demo for the guide panel.
type Demo struct {
	HTML       string
	Route      string
	ServerStub string
	ServerFull string
}

// Demos returns the full registry keyed by demo id.
func Demos() map[string]Demo {
	return demos
}

// Keys returns the demo ids in stable sorted order for template iteration.
func Keys() []string {
	keys := make([]string, 0, len(demos))
	for k := range demos {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var demos = map[string]Demo{
	"demo-hx-get": {
		HTML:  `<button hx-get="/hello" hx-target="#hello-target">Load greeting</button>`,
		Route: "GET /hello",
		ServerStub: `func (s *Server) handleHello(c *gin.Context) {
    s.fragment(c, "hello", "hello.html", ...)
}`,
		ServerFull: `func (s *Server) handleHello(c *gin.Context) {
    name := c.DefaultQuery("name", "Programmer")
    s.fragment(c, "hello", "hello.html", gin.H{
        "Name": name,
        "Now":  time.Now(),
    })
}`,
	},
	"demo-hx-trigger": {
		HTML:  `<input hx-get="/search" hx-trigger="keyup changed delay:300ms" hx-target="#search-results">`,
		Route: "GET /search?q=term",
		ServerStub: `func (s *Server) handleSearch(c *gin.Context) {
    matches := s.catalog.Search(c.Query("q"))
}`,
		ServerFull: `func (s *Server) handleSearch(c *gin.Context) {
    q := c.Query("q")
    matches := s.catalog.Search(q)
    var suggestions []string
    if len(matches) == 0 {
        suggestions = s.catalog.Suggest(q, 3)
    }
    s.fragment(c, "search", "search_results.html", gin.H{
        "Query": q, "Matches": matches, "Suggestions": suggestions,
    })
}`,
	},
	"demo-hx-post": {
		HTML:  `<form hx-post="/form/validate" hx-target="#validation">...</form>`,
		Route: "POST /form/validate",
		ServerStub: `func (s *Server) handleValidate(c *gin.Context) {
    result := s.forms.CheckContact(form)
}`,
		ServerFull: `func (s *Server) handleValidate(c *gin.Context) {
    var form forms.ContactForm
    _ = c.ShouldBind(&form)
    result := s.forms.CheckContact(form)
    s.fragment(c, "validate", "validation.html", gin.H{"Result": result})
}`,
	},
	"demo-template": {
		HTML:  `{{template "template_demo.html" .}}`,
		Route: "GET /template-demo",
		ServerStub: `func (s *Server) handleTemplateDemo(c *gin.Context) {
    s.fragment(c, "template", "template_demo.html", ...)
}`,
		ServerFull: `func (s *Server) handleTemplateDemo(c *gin.Context) {
    s.fragment(c, "template", "template_demo.html", gin.H{
        "Topics":  templateTopics,
        "ShowTip": true,
        "Now":     time.Now(),
    })
}`,
	},
	"demo-template-blocks": {
		HTML:  `{{template "alert" .}}`,
		Route: "GET /template-blocks",
		ServerStub: `func (s *Server) handleTemplateBlocks(c *gin.Context) {
    s.fragment(c, "template-blocks", "template_blocks.html", ...)
}`,
		ServerFull: `func (s *Server) handleTemplateBlocks(c *gin.Context) {
    s.fragment(c, "template-blocks", "template_blocks.html", gin.H{
        "Alerts": templateAlerts,
        "Now":    time.Now(),
    })
}`,
	},
	"demo-template-layout": {
		HTML:  `{{template "fragment_frame_top" .}} ... {{template "fragment_frame_bottom"}}`,
		Route: "GET /template-layout",
		ServerStub: `func (s *Server) handleTemplateLayout(c *gin.Context) {
    s.fragment(c, "template-layout", "template_layout.html", ...)
}`,
		ServerFull: `func (s *Server) handleTemplateLayout(c *gin.Context) {
    s.fragment(c, "template-layout", "template_layout.html", gin.H{
        "Title": "Inherited Fragment",
        "Body":  "This fragment wraps a shared frame and fills its slots.",
        "Now":   time.Now(),
    })
}`,
	},
	"demo-hx-swap": {
		HTML:  `<button hx-get="/counter" hx-target="#swap-demo" hx-swap="outerHTML">outerHTML</button>`,
		Route: "GET /counter",
		ServerStub: `func (s *Server) handleCounter(c *gin.Context) {
    value := s.clicks.Increment()
}`,
		ServerFull: `func (s *Server) handleCounter(c *gin.Context) {
    value := s.clicks.Increment()
    s.fragment(c, "counter", "counter.html", gin.H{"Value": value})
}`,
	},
	"demo-compare-swaps": {
		HTML:  `<button hx-get="/counter" hx-target="#compare-target-a" hx-swap="beforeend">Trigger</button>`,
		Route: "GET /counter",
		ServerStub: `func (s *Server) handleCounter(c *gin.Context) {
    value := s.clicks.Increment()
}`,
		ServerFull: `func (s *Server) handleCounter(c *gin.Context) {
    value := s.clicks.Increment()
    s.fragment(c, "counter", "counter.html", gin.H{"Value": value})
}`,
	},
	"demo-poll": {
		HTML:  `<div hx-get="/poll" hx-trigger="every 2s"></div>`,
		Route: "GET /poll",
		ServerStub: `func (s *Server) handlePoll(c *gin.Context) {
    s.fragment(c, "poll", "poll.html", ...)
}`,
		ServerFull: `func (s *Server) handlePoll(c *gin.Context) {
    s.fragment(c, "poll", "poll.html", gin.H{"Now": time.Now()})
}`,
	},
	"demo-revealed": {
		HTML:  `<div hx-get="/lazy" hx-trigger="revealed"></div>`,
		Route: "GET /lazy",
		ServerStub: `func (s *Server) handleLazy(c *gin.Context) {
    s.fragment(c, "lazy", "lazy.html", ...)
}`,
		ServerFull: `func (s *Server) handleLazy(c *gin.Context) {
    s.fragment(c, "lazy", "lazy.html", gin.H{"Now": time.Now()})
}`,
	},
	"demo-oob": {
		HTML:  `<div id="badge" hx-swap-oob="true">...</div>`,
		Route: "GET /oob",
		ServerStub: `func (s *Server) handleOOB(c *gin.Context) {
    s.fragment(c, "oob", "oob.html", ...)
}`,
		ServerFull: `func (s *Server) handleOOB(c *gin.Context) {
    s.fragment(c, "oob", "oob.html", gin.H{"Now": time.Now()})
}`,
	},
	"demo-push-url": {
		HTML:  `<button hx-get="/fragment?tab=details" hx-target="#fragment-target" hx-push-url="true">Details</button>`,
		Route: "GET /fragment?tab=details",
		ServerStub: `func (s *Server) handleFragment(c *gin.Context) {
    tab := c.DefaultQuery("tab", "overview")
}`,
		ServerFull: `func (s *Server) handleFragment(c *gin.Context) {
    tab := c.DefaultQuery("tab", "overview")
    s.fragment(c, "fragment", "fragment.html", gin.H{"Tab": tab})
}`,
	},
	"demo-include": {
		HTML:  `<button hx-post="/request-info" hx-include="#include-note" hx-vals='{"source":"hx-vals"}'></button>`,
		Route: "POST /request-info",
		ServerStub: `func (s *Server) handleRequestInfo(c *gin.Context) {
    _ = c.Request.ParseForm()
}`,
		ServerFull: `func (s *Server) handleRequestInfo(c *gin.Context) {
    _ = c.Request.ParseForm()
    s.fragment(c, "request-info", "request_info.html", gin.H{
        "Headers": requestInfoHeaders(c.Request),
        "Params":  c.Request.PostForm,
    })
}`,
	},
	"demo-indicator": {
		HTML:  `<button hx-get="/hello" hx-indicator="#loading-indicator"></button>`,
		Route: "GET /hello",
		ServerStub: `func (s *Server) handleHello(c *gin.Context) {
    s.fragment(c, "hello", "hello.html", ...)
}`,
		ServerFull: `func (s *Server) handleHello(c *gin.Context) {
    name := c.DefaultQuery("name", "Programmer")
    s.fragment(c, "hello", "hello.html", gin.H{"Name": name, "Now": time.Now()})
}`,
	},
	"demo-rest": {
		HTML:  `<button hx-delete="/todos/1" hx-confirm="Delete?"></button>`,
		Route: "DELETE /todos/:id",
		ServerStub: `func (s *Server) handleDeleteTodo(c *gin.Context) {
    err := s.todos.Delete(id)
}`,
		ServerFull: `func (s *Server) handleDeleteTodo(c *gin.Context) {
    id, err := strconv.Atoi(c.Param("id"))
    if err != nil || s.todos.Delete(id) != nil {
        c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "todo not found"})
        return
    }
    s.renderTodos(c, "")
}`,
	},
	"demo-select": {
		HTML:  `<div hx-get="/select-demo" hx-select="#selected-snippet"></div>`,
		Route: "GET /select-demo",
		ServerStub: `func (s *Server) handleSelectDemo(c *gin.Context) {
    s.fragment(c, "select", "select_demo.html", ...)
}`,
		ServerFull: `func (s *Server) handleSelectDemo(c *gin.Context) {
    s.fragment(c, "select", "select_demo.html", gin.H{"Now": time.Now()})
}`,
	},
	"demo-sync": {
		HTML:  `<button hx-get="/sync-demo" hx-sync="this:replace"></button>`,
		Route: "GET /sync-demo",
		ServerStub: `func (s *Server) handleSyncDemo(c *gin.Context) {
    time.Sleep(s.cfg.Demo.SyncDelay)
}`,
		ServerFull: `func (s *Server) handleSyncDemo(c *gin.Context) {
    item := c.DefaultQuery("item", "Alpha")
    time.Sleep(s.cfg.Demo.SyncDelay)
    s.fragment(c, "sync", "sync_demo.html", gin.H{"Item": item, "Now": time.Now()})
}`,
	},
	"demo-params": {
		HTML:  `<form hx-get="/params-demo" hx-params="not debug"></form>`,
		Route: "GET /params-demo",
		ServerStub: `func (s *Server) handleParamsDemo(c *gin.Context) {
    focus, debug := c.Query("focus"), c.Query("debug")
}`,
		ServerFull: `func (s *Server) handleParamsDemo(c *gin.Context) {
    s.fragment(c, "params", "params_demo.html", gin.H{
        "Focus": c.Query("focus"),
        "Debug": c.Query("debug"),
        "Now":   time.Now(),
    })
}`,
	},
	"demo-preserve": {
		HTML:  `<input hx-preserve="true">`,
		Route: "GET /preserve",
		ServerStub: `func (s *Server) handlePreserve(c *gin.Context) {
    s.fragment(c, "preserve", "preserve.html", ...)
}`,
		ServerFull: `func (s *Server) handlePreserve(c *gin.Context) {
    s.fragment(c, "preserve", "preserve.html", gin.H{"Now": time.Now()})
}`,
	},
	"demo-disabled-elt": {
		HTML:  `<button hx-get="/disabled-demo" hx-disabled-elt="this"></button>`,
		Route: "GET /disabled-demo",
		ServerStub: `func (s *Server) handleDisabledDemo(c *gin.Context) {
    time.Sleep(s.cfg.Demo.DisabledDelay)
}`,
		ServerFull: `func (s *Server) handleDisabledDemo(c *gin.Context) {
    time.Sleep(s.cfg.Demo.DisabledDelay)
    s.fragment(c, "disabled", "disabled_demo.html", gin.H{"Now": time.Now()})
}`,
	},
	"demo-redirect": {
		HTML:  `<button hx-get="/redirect-demo"></button>`,
		Route: "GET /redirect-demo (HX-Redirect)",
		ServerStub: `func (s *Server) handleRedirectDemo(c *gin.Context) {
    c.Header(hx.HeaderRedirect, "/page/about")
}`,
		ServerFull: `func (s *Server) handleRedirectDemo(c *gin.Context) {
    c.Header(hx.HeaderRedirect, "/page/about")
    c.String(http.StatusOK, "")
}`,
	},
	"demo-patch": {
		HTML:  `<button hx-patch="/patch-demo" hx-target="#patch-target"></button>`,
		Route: "PATCH /patch-demo",
		ServerStub: `func (s *Server) handlePatchDemo(c *gin.Context) {
    s.fragment(c, "patch", "patch_demo.html", ...)
}`,
		ServerFull: `func (s *Server) handlePatchDemo(c *gin.Context) {
    s.fragment(c, "patch", "patch_demo.html", gin.H{"Now": time.Now()})
}`,
	},
	"demo-validate": {
		HTML:  `<form hx-post="/validate-required" hx-validate="true"></form>`,
		Route: "POST /validate-required",
		ServerStub: `func (s *Server) handleValidateRequired(c *gin.Context) {
    username := c.PostForm("username")
}`,
		ServerFull: `func (s *Server) handleValidateRequired(c *gin.Context) {
    s.fragment(c, "validate-required", "validate_required.html", gin.H{
        "Username": c.PostForm("username"),
        "Now":      time.Now(),
    })
}`,
	},
	"demo-encoding": {
		HTML:  `<form hx-post="/encoding-demo" hx-encoding="multipart/form-data"></form>`,
		Route: "POST /encoding-demo",
		ServerStub: `func (s *Server) handleEncodingDemo(c *gin.Context) {
    fields := formFieldNames(c.Request)
}`,
		ServerFull: `func (s *Server) handleEncodingDemo(c *gin.Context) {
    s.fragment(c, "encoding", "encoding_demo.html", gin.H{
        "ContentType": c.ContentType(),
        "Fields":      formFieldNames(c.Request),
        "Now":         time.Now(),
    })
}`,
	},
	"demo-request": {
		HTML:  `<button hx-get="/slow" hx-request='{"timeout":1000}'></button>`,
		Route: "GET /slow",
		ServerStub: `func (s *Server) handleSlow(c *gin.Context) {
    time.Sleep(s.cfg.Demo.SlowDelay)
}`,
		ServerFull: `func (s *Server) handleSlow(c *gin.Context) {
    time.Sleep(s.cfg.Demo.SlowDelay)
    s.fragment(c, "slow", "slow.html", gin.H{"Now": time.Now()})
}`,
	},
	"demo-prompt": {
		HTML:  `<button hx-get="/request-headers" hx-prompt="Your name?"></button>`,
		Route: "GET /request-headers",
		ServerStub: `func (s *Server) handleRequestHeaders(c *gin.Context) {
    headers := hx.RequestHeaders(c.Request)
}`,
		ServerFull: `func (s *Server) handleRequestHeaders(c *gin.Context) {
    s.fragment(c, "request-headers", "request_headers.html", gin.H{
        "Headers": hx.RequestHeaders(c.Request),
        "Now":     time.Now(),
    })
}`,
	},
	"demo-select-oob": {
		HTML:  `<div hx-get="/select-oob" hx-select-oob="#select-oob-alert"></div>`,
		Route: "GET /select-oob",
		ServerStub: `func (s *Server) handleSelectOOB(c *gin.Context) {
    s.fragment(c, "select-oob", "select_oob.html", ...)
}`,
		ServerFull: `func (s *Server) handleSelectOOB(c *gin.Context) {
    s.fragment(c, "select-oob", "select_oob.html", gin.H{"Now": time.Now()})
}`,
	},
	"demo-headers": {
		HTML:  `HX-Trigger: {"demoEvent":{}}`,
		Route: "GET /response-headers/:kind",
		ServerStub: `func (s *Server) handleResponseHeaders(c *gin.Context) {
    switch c.Param("kind") { ... }
}`,
		ServerFull: `func (s *Server) handleResponseHeaders(c *gin.Context) {
    kind, now := c.Param("kind"), time.Now()
    switch kind {
    case "push":
        c.Header(hx.HeaderPushURL, "/?pushed=1")
    case "refresh":
        c.Header(hx.HeaderRefresh, "true")
    case "trigger":
        payload, _ := hx.TriggerPayload("demoEvent", gin.H{"time": now.Format("15:04:05")})
        c.Header(hx.HeaderTrigger, payload)
    // ... replace, location, reswap, retarget, reselect, after-swap, after-settle
    }
    s.fragment(c, "response-headers", "response_headers.html", gin.H{"Kind": kind, "Now": now})
}`,
	},
	"demo-replace-url": {
		HTML:  `<button hx-get="/fragment?tab=details" hx-replace-url="true"></button>`,
		Route: "GET /fragment?tab=details",
		ServerStub: `func (s *Server) handleFragment(c *gin.Context) {
    tab := c.DefaultQuery("tab", "overview")
}`,
		ServerFull: `func (s *Server) handleFragment(c *gin.Context) {
    tab := c.DefaultQuery("tab", "overview")
    s.fragment(c, "fragment", "fragment.html", gin.H{"Tab": tab})
}`,
	},
	"demo-inherit": {
		HTML:  `<div hx-target="#t" hx-disinherit="*"><button hx-inherit="hx-target"></button></div>`,
		Route: "GET /hello",
		ServerStub: `func (s *Server) handleHello(c *gin.Context) {
    s.fragment(c, "hello", "hello.html", ...)
}`,
		ServerFull: `func (s *Server) handleHello(c *gin.Context) {
    name := c.DefaultQuery("name", "Programmer")
    s.fragment(c, "hello", "hello.html", gin.H{"Name": name, "Now": time.Now()})
}`,
	},
	"demo-disable": {
		HTML:  `<div hx-disable>...disabled HTMX subtree...</div>`,
		Route: "GET /hello",
		ServerStub: `func (s *Server) handleHello(c *gin.Context) {
    s.fragment(c, "hello", "hello.html", ...)
}`,
		ServerFull: `func (s *Server) handleHello(c *gin.Context) {
    name := c.DefaultQuery("name", "Programmer")
    s.fragment(c, "hello", "hello.html", gin.H{"Name": name, "Now": time.Now()})
}`,
	},
	"demo-history": {
		HTML:  `<div hx-history-elt="#history-target"></div>`,
		Route: "GET /fragment",
		ServerStub: `func (s *Server) handleFragment(c *gin.Context) {
    tab := c.DefaultQuery("tab", "overview")
}`,
		ServerFull: `func (s *Server) handleFragment(c *gin.Context) {
    tab := c.DefaultQuery("tab", "overview")
    s.fragment(c, "fragment", "fragment.html", gin.H{"Tab": tab})
}`,
	},
	"demo-history-optout": {
		HTML:  `<div hx-history="false"></div>`,
		Route: "GET /hello",
		ServerStub: `func (s *Server) handleHello(c *gin.Context) {
    s.fragment(c, "hello", "hello.html", ...)
}`,
		ServerFull: `func (s *Server) handleHello(c *gin.Context) {
    name := c.DefaultQuery("name", "Programmer")
    s.fragment(c, "hello", "hello.html", gin.H{"Name": name, "Now": time.Now()})
}`,
	},
	"demo-hx-on": {
		HTML:  `<button hx-on::after-request="..."></button>`,
		Route: "GET /hello",
		ServerStub: `func (s *Server) handleHello(c *gin.Context) {
    s.fragment(c, "hello", "hello.html", ...)
}`,
		ServerFull: `func (s *Server) handleHello(c *gin.Context) {
    name := c.DefaultQuery("name", "Programmer")
    s.fragment(c, "hello", "hello.html", gin.H{"Name": name, "Now": time.Now()})
}`,
	},
	"demo-jsapi": {
		HTML:  `htmx.ajax("GET", "/hello", { target: "#jsapi-target" })`,
		Route: "GET /hello",
		ServerStub: `func (s *Server) handleHello(c *gin.Context) {
    s.fragment(c, "hello", "hello.html", ...)
}`,
		ServerFull: `func (s *Server) handleHello(c *gin.Context) {
    name := c.DefaultQuery("name", "Programmer")
    s.fragment(c, "hello", "hello.html", gin.H{"Name": name, "Now": time.Now()})
}`,
	},
	"demo-classes": {
		HTML:  `<div class="htmx-added">New node</div>`,
		Route: "GET /animate",
		ServerStub: `func (s *Server) handleAnimate(c *gin.Context) {
    value := s.animations.Increment()
}`,
		ServerFull: `func (s *Server) handleAnimate(c *gin.Context) {
    value := s.animations.Increment()
    s.fragment(c, "animate", "animate.html", gin.H{"Value": value})
}`,
	},
	"demo-preload": {
		HTML:  `<button hx-get="/preload-info" preload="mouseover"></button>`,
		Route: "GET /preload-info",
		ServerStub: `func (s *Server) handlePreloadInfo(c *gin.Context) {
    preloaded := c.GetHeader(hx.HeaderPreloaded)
}`,
		ServerFull: `func (s *Server) handlePreloadInfo(c *gin.Context) {
    s.fragment(c, "preload", "preload_info.html", gin.H{
        "Preloaded": c.GetHeader(hx.HeaderPreloaded),
        "Now":       time.Now(),
    })
}`,
	},
	"demo-response-targets": {
		HTML:  `<button hx-get="/status-demo/error" hx-target-422="#status-error"></button>`,
		Route: "GET /status-demo/:mode",
		ServerStub: `func (s *Server) handleStatusDemo(c *gin.Context) {
    if c.Param("mode") == "error" { ... 422 ... }
}`,
		ServerFull: `func (s *Server) handleStatusDemo(c *gin.Context) {
    now := time.Now()
    if c.Param("mode") == "error" {
        c.HTML(http.StatusUnprocessableEntity, "status_demo.html", gin.H{"Status": "Error 422", "Now": now})
        return
    }
    s.fragment(c, "status", "status_demo.html", gin.H{"Status": "OK 200", "Now": now})
}`,
	},
	"demo-head-support": {
		HTML:  `<div hx-get="/head-support" hx-target="#head-target"></div>`,
		Route: "GET /head-support",
		ServerStub: `func (s *Server) handleHeadSupport(c *gin.Context) {
    s.fragment(c, "head-support", "head_support.html", ...)
}`,
		ServerFull: `func (s *Server) handleHeadSupport(c *gin.Context) {
    s.fragment(c, "head-support", "head_support.html", gin.H{"Now": time.Now()})
}`,
	},
	"demo-sse": {
		HTML:  `<div hx-ext="sse" sse-connect="/sse" sse-swap="message"></div>`,
		Route: "GET /sse",
		ServerStub: `func (s *Server) handleSSE(c *gin.Context) {
    c.Stream(func(w io.Writer) bool { ... })
}`,
		ServerFull: `func (s *Server) handleSSE(c *gin.Context) {
    c.Header("Cache-Control", "no-cache")
    ticker := time.NewTicker(s.cfg.Demo.SSEInterval)
    defer ticker.Stop()
    c.Stream(func(w io.Writer) bool {
        select {
        case <-c.Request.Context().Done():
            return false
        case t := <-ticker.C:
            sse.Encode(w, sse.Event{Event: "message", Data: tickFragment(t)})
            return true
        }
    })
}`,
	},
	"demo-ws": {
		HTML:  `<div hx-ext="ws" ws-connect="/ws"><form ws-send>...</form></div>`,
		Route: "GET /ws (WebSocket)",
		ServerStub: `func (e *Echo) ServeWS(w http.ResponseWriter, r *http.Request) {
    conn, err := e.upgrader.Upgrade(w, r, nil)
}`,
		ServerFull: `func (e *Echo) ServeWS(w http.ResponseWriter, r *http.Request) {
    conn, err := e.upgrader.Upgrade(w, r, nil)
    if err != nil {
        return
    }
    defer conn.Close()
    for {
        _, payload, err := conn.ReadMessage()
        if err != nil {
            return
        }
        reply := e.Fragment(string(payload), time.Now())
        if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
            return
        }
    }
}`,
	},
	"demo-morph": {
		HTML:  `<div hx-get="/morph-demo" hx-swap="morph"></div>`,
		Route: "GET /morph-demo",
		ServerStub: `func (s *Server) handleMorphDemo(c *gin.Context) {
    order := s.morphOrder()
}`,
		ServerFull: `func (s *Server) handleMorphDemo(c *gin.Context) {
    s.fragment(c, "morph", "morph_demo.html", gin.H{
        "Order": s.morphOrder(),
        "Now":   time.Now(),
    })
}`,
	},
}
