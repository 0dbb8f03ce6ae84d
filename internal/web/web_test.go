package web_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asw0210/htmx-demo/internal/web"
)

func TestTemplatesParse(t *testing.T) {
	tmpl := web.Templates()
	require.NotNil(t, tmpl)

	for _, name := range []string{
		"index.html",
		"page.html",
		"async_dashboard.html",
		"hello.html",
		"todos.html",
		"async_tiles.html",
		"alert",
		"page_head",
	} {
		assert.NotNil(t, tmpl.Lookup(name), "template %q missing", name)
	}
}

func TestStaticAssets(t *testing.T) {
	static := web.Static()

	for _, name := range []string{"styles.css", "demo.js"} {
		f, err := static.Open(name)
		require.NoError(t, err, "asset %q missing", name)
		f.Close()
	}
}
