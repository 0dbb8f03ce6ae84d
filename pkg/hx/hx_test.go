package hx_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asw0210/htmx-demo/pkg/hx"
)

func TestRequestHeaders(t *testing.T) {
	req := httptest.NewRequest("GET", "/request-headers", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "#target")

	headers := hx.RequestHeaders(req)
	assert.Equal(t, "true", headers[hx.HeaderRequest])
	assert.Equal(t, "#target", headers[hx.HeaderTarget])
	// Unsent headers still appear, as empty strings.
	assert.Contains(t, headers, hx.HeaderPrompt)
	assert.Equal(t, "", headers[hx.HeaderPrompt])
}

func TestTriggerPayload(t *testing.T) {
	payload, err := hx.TriggerPayload("demoEvent", map[string]string{"time": "12:00:00"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"demoEvent":{"time":"12:00:00"}}`, payload)
}
