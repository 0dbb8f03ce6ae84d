package ws_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/asw0210/htmx-demo/internal/ws"
)

func TestFragmentWrapsMessage(t *testing.T) {
	echo := ws.NewEcho(zap.NewNop())
	now := time.Date(2025, 6, 1, 12, 34, 56, 0, time.UTC)

	out := echo.Fragment("hello", now)
	assert.Contains(t, out, `id="ws-messages"`)
	assert.Contains(t, out, `hx-swap-oob="beforeend"`)
	assert.Contains(t, out, "WS 12:34:56: hello")
}

func TestFragmentStripsMarkup(t *testing.T) {
	echo := ws.NewEcho(zap.NewNop())

	out := echo.Fragment("<img src=x onerror=alert(1)>plain", time.Now())
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "plain")
}
