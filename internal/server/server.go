package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/asw0210/htmx-demo/internal/catalog"
	"github.com/asw0210/htmx-demo/internal/config"
	"github.com/asw0210/htmx-demo/internal/counter"
	"github.com/asw0210/htmx-demo/internal/dashboard"
	"github.com/asw0210/htmx-demo/internal/forms"
	"github.com/asw0210/htmx-demo/internal/todos"
	"github.com/asw0210/htmx-demo/internal/web"
	"github.com/asw0210/htmx-demo/internal/ws"
	"github.com/asw0210/htmx-demo/pkg/metrics"
)

// Server represents the HTTP server
type Server struct {
	logger     *zap.Logger
	cfg        *config.Config
	clicks     *counter.Counter
	animations *counter.Counter
	todos      *todos.Service
	catalog    *catalog.Catalog
	dash       *dashboard.Service
	echo       *ws.Echo
	forms      *forms.Validator

	morphMu   sync.Mutex
	morphFlip bool
}

// NewServer creates a new HTTP server
func NewServer(
	logger *zap.Logger,
	cfg *config.Config,
	todoSvc *todos.Service,
	dashSvc *dashboard.Service,
	echo *ws.Echo,
) *Server {
	return &Server{
		logger:     logger,
		cfg:        cfg,
		clicks:     counter.New(),
		animations: counter.New(),
		todos:      todoSvc,
		catalog:    catalog.New(),
		dash:       dashSvc,
		echo:       echo,
		forms:      forms.New(),
	}
}

// Router creates a new HTTP router
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(ginzap.Ginzap(s.logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(s.logger, true))
	router.Use(otelgin.Middleware("hxdemo"))
	router.Use(cors.Default())

	router.SetHTMLTemplate(web.Templates())
	router.StaticFS("/static", web.Static())

	// Health check and metrics
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Pages
	router.GET("/", s.handleHome)
	router.GET("/page/about", s.handleAbout)
	router.GET("/page/async-dashboard", s.handleAsyncDashboard)

	// Fragment demos
	router.GET("/hello", s.handleHello)
	router.GET("/counter", s.handleCounter)
	router.GET("/animate", s.handleAnimate)
	router.GET("/search", s.handleSearch)
	router.GET("/poll", s.handlePoll)
	router.GET("/lazy", s.handleLazy)
	router.GET("/fragment", s.handleFragment)
	router.GET("/oob", s.handleOOB)
	router.GET("/select-demo", s.handleSelectDemo)
	router.GET("/select-oob", s.handleSelectOOB)
	router.GET("/sync-demo", s.handleSyncDemo)
	router.GET("/params-demo", s.handleParamsDemo)
	router.GET("/preserve", s.handlePreserve)
	router.GET("/disabled-demo", s.handleDisabledDemo)
	router.GET("/multi-swap", s.handleMultiSwap)
	router.GET("/items/:id", s.handleItemDetail)
	router.GET("/head-support", s.handleHeadSupport)
	router.GET("/morph-demo", s.handleMorphDemo)
	router.GET("/status-demo/:mode", s.handleStatusDemo)
	router.GET("/slow", s.handleSlow)
	router.PATCH("/patch-demo", s.handlePatchDemo)

	// Template lessons
	router.GET("/template-demo", s.handleTemplateDemo)
	router.GET("/template-blocks", s.handleTemplateBlocks)
	router.GET("/template-layout", s.handleTemplateLayout)

	// Header demos
	router.GET("/request-headers", s.handleRequestHeaders)
	router.GET("/response-headers/:kind", s.handleResponseHeaders)
	router.GET("/redirect-demo", s.handleRedirectDemo)
	router.GET("/preload-info", s.handlePreloadInfo)
	router.POST("/event-header", s.handleEventHeader)
	router.POST("/request-info", s.handleRequestInfo)

	// Form demos
	router.POST("/form/validate", s.handleValidate)
	router.POST("/validate-required", s.handleValidateRequired)
	router.POST("/encoding-demo", s.handleEncodingDemo)
	router.POST("/json-enc", s.handleJSONEnc)

	// Todos
	router.POST("/todos", s.handleAddTodo)
	router.PUT("/todos/:id", s.handleToggleTodo)
	router.DELETE("/todos/:id", s.handleDeleteTodo)

	// Async dashboard polling
	router.GET("/async-dashboard/poll", s.handleDashboardPoll)

	// Streaming
	router.GET("/sse", s.handleSSE)
	router.GET("/ws", s.handleWebSocket)

	return router
}

// fragment renders a partial template and counts it under the demo label.
func (s *Server) fragment(c *gin.Context, demo, tmpl string, data gin.H) {
	metrics.FragmentsRendered.WithLabelValues(demo).Inc()
	c.HTML(http.StatusOK, tmpl, data)
}
