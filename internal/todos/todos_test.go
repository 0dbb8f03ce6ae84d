package todos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asw0210/htmx-demo/internal/todos"
)

func TestSeededList(t *testing.T) {
	svc := todos.NewService(zap.NewNop())
	items := svc.List()

	require.Len(t, items, 3)
	assert.Equal(t, "Skim the HTMX docs", items[0].Text)
	assert.False(t, items[0].Done)
	assert.True(t, items[2].Done)
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	svc := todos.NewService(zap.NewNop())

	first, err := svc.Add("write tests")
	require.NoError(t, err)
	second, err := svc.Add("ship it")
	require.NoError(t, err)

	assert.Equal(t, 4, first.ID)
	assert.Equal(t, 5, second.ID)
	assert.Len(t, svc.List(), 5)
}

func TestAddTrimsAndStripsMarkup(t *testing.T) {
	svc := todos.NewService(zap.NewNop())

	todo, err := svc.Add("  <b>bold</b> move  ")
	require.NoError(t, err)
	assert.Equal(t, "bold move", todo.Text)
}

func TestAddEmptyText(t *testing.T) {
	svc := todos.NewService(zap.NewNop())

	_, err := svc.Add("   ")
	assert.ErrorIs(t, err, todos.ErrEmptyText)

	_, err = svc.Add("<script>alert(1)</script>")
	assert.ErrorIs(t, err, todos.ErrEmptyText)
}

func TestToggle(t *testing.T) {
	svc := todos.NewService(zap.NewNop())

	require.NoError(t, svc.Toggle(1))
	assert.True(t, svc.List()[0].Done)

	require.NoError(t, svc.Toggle(1))
	assert.False(t, svc.List()[0].Done)

	assert.ErrorIs(t, svc.Toggle(999), todos.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := todos.NewService(zap.NewNop())

	require.NoError(t, svc.Delete(2))
	items := svc.List()
	require.Len(t, items, 2)
	for _, item := range items {
		assert.NotEqual(t, 2, item.ID)
	}

	assert.ErrorIs(t, svc.Delete(2), todos.ErrNotFound)
}

func TestListReturnsCopy(t *testing.T) {
	svc := todos.NewService(zap.NewNop())

	items := svc.List()
	items[0].Text = "mutated"

	assert.Equal(t, "Skim the HTMX docs", svc.List()[0].Text)
}
