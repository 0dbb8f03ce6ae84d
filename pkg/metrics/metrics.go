package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// FragmentsRendered counts rendered HTML fragments by demo name
var FragmentsRendered = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hxdemo_fragments_rendered_total",
		Help: "Total number of HTML fragments rendered, labelled by demo",
	},
	[]string{"demo"},
)

// TodoOps counts todo mutations by action (add/toggle/delete)
var TodoOps = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hxdemo_todo_operations_total",
		Help: "Total number of todo list mutations, labelled by action",
	},
	[]string{"action"},
)

// Async dashboard metrics
var (
	RunsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hxdemo_dashboard_runs_started_total",
			Help: "Number of async dashboard runs started",
		},
	)

	WorkersCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hxdemo_dashboard_workers_completed_total",
			Help: "Number of simulated background workers that finished",
		},
	)

	RunsExpired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hxdemo_dashboard_runs_expired_total",
			Help: "Number of async dashboard runs removed by the janitor",
		},
	)
)

// Streaming metrics
var (
	SSETicks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hxdemo_sse_ticks_total",
			Help: "Number of server-sent event ticks emitted",
		},
	)

	WSMessages = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hxdemo_ws_messages_total",
			Help: "Number of WebSocket messages echoed back to clients",
		},
	)
)

func init() {
	prometheus.MustRegister(FragmentsRendered, TodoOps)
	prometheus.MustRegister(RunsStarted, WorkersCompleted, RunsExpired)
	prometheus.MustRegister(SSETicks, WSMessages)
}
