package server_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncDashboardPageStartsRun(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(router, http.MethodGet, "/page/async-dashboard", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Async Dashboard")
	assert.Contains(t, w.Body.String(), "/async-dashboard/poll?run_id=")
}

func TestDashboardPollUnknownRunIsDone(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(router, http.MethodGet, "/async-dashboard/poll?run_id=missing&offset=0", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "All workers finished.")
	assert.NotContains(t, w.Body.String(), "dashboard-poller")
}

func TestDashboardPollEventuallyReturnsAllTiles(t *testing.T) {
	router := setupRouter(t)

	page := doRequest(router, http.MethodGet, "/page/async-dashboard", nil, nil)
	require.Equal(t, http.StatusOK, page.Code)
	runID := extractRunID(t, page.Body.String())

	require.Eventually(t, func() bool {
		w := doRequest(router, http.MethodGet, "/async-dashboard/poll?run_id="+runID+"&offset=0", nil, nil)
		return strings.Contains(w.Body.String(), "All workers finished.")
	}, time.Second, 5*time.Millisecond)

	// The test config spawns two workers.
	w := doRequest(router, http.MethodGet, "/async-dashboard/poll?run_id="+runID+"&offset=0", nil, nil)
	assert.Contains(t, w.Body.String(), "Worker 1")
	assert.Contains(t, w.Body.String(), "Worker 2")

	// Polling past the end yields no tiles, still done.
	w = doRequest(router, http.MethodGet, "/async-dashboard/poll?run_id="+runID+"&offset=2", nil, nil)
	assert.NotContains(t, w.Body.String(), "Worker 1")
	assert.Contains(t, w.Body.String(), "All workers finished.")
}

func extractRunID(t *testing.T, body string) string {
	t.Helper()
	marker := "/async-dashboard/poll?run_id="
	idx := strings.Index(body, marker)
	require.GreaterOrEqual(t, idx, 0)
	rest := body[idx+len(marker):]
	end := strings.IndexAny(rest, "&\"")
	require.GreaterOrEqual(t, end, 0)
	return rest[:end]
}

func TestSSEStreamsTicks(t *testing.T) {
	router := setupRouter(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/sse", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))

	scanner := bufio.NewScanner(resp.Body)
	var sawEvent, sawTick bool
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event:") && strings.Contains(line, "message") {
			sawEvent = true
		}
		if strings.HasPrefix(line, "data:") && strings.Contains(line, "SSE tick") {
			sawTick = true
		}
		if sawEvent && sawTick {
			break
		}
	}
	assert.True(t, sawEvent, "expected an event line")
	assert.True(t, sawTick, "expected a tick fragment")
}

// The first event arrives immediately, not one interval in.
func TestSSEFirstTickImmediate(t *testing.T) {
	cfg := testConfig()
	cfg.Demo.SSEInterval = time.Minute
	router := setupRouterWith(t, cfg)
	srv := httptest.NewServer(router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/sse", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	sawTick := false
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "data:") {
			sawTick = true
			break
		}
	}
	assert.True(t, sawTick, "expected a tick before the interval elapsed")
}

func TestWebSocketEcho(t *testing.T) {
	router := setupRouter(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello there")))

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	assert.Contains(t, string(payload), "hx-swap-oob")
	assert.Contains(t, string(payload), "hello there")
}

func TestWebSocketEchoStripsMarkup(t *testing.T) {
	router := setupRouter(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`<script>alert(1)</script>safe`)))

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "<script>")
	assert.Contains(t, string(payload), "safe")
}
