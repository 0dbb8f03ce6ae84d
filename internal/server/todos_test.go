package server_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddTodo(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(router, http.MethodPost, "/todos", url.Values{"text": {"New task"}}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New task")
}

func TestAddEmptyTodo(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(router, http.MethodPost, "/todos", url.Values{"text": {"   "}}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Enter a task.")
}

func TestToggleTodo(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(router, http.MethodPut, "/todos/1", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Skim the HTMX docs")
}

func TestToggleNonexistentTodo(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(router, http.MethodPut, "/todos/999", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTodo(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(router, http.MethodDelete, "/todos/1", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Skim the HTMX docs")
}

func TestDeleteNonexistentTodo(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(router, http.MethodDelete, "/todos/999", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTodoWithBadID(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(router, http.MethodDelete, "/todos/abc", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
