package guide_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asw0210/htmx-demo/internal/guide"
)

func TestDemosAreComplete(t *testing.T) {
	demos := guide.Demos()
	require.NotEmpty(t, demos)

	for key, demo := range demos {
		assert.NotEmpty(t, demo.HTML, "%s missing client markup", key)
		assert.NotEmpty(t, demo.Route, "%s missing route", key)
		assert.NotEmpty(t, demo.ServerStub, "%s missing stub", key)
		assert.NotEmpty(t, demo.ServerFull, "%s missing full listing", key)
	}

	for _, key := range []string{"demo-hx-get", "demo-sse", "demo-ws", "demo-morph", "demo-rest"} {
		assert.Contains(t, demos, key)
	}
}

func TestKeysAreSorted(t *testing.T) {
	keys := guide.Keys()
	require.Len(t, keys, len(guide.Demos()))
	assert.True(t, sort.StringsAreSorted(keys))
}
