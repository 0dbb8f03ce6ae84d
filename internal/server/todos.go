package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asw0210/htmx-demo/internal/todos"
)

// handleAddTodo appends a task. Empty text re-renders the list with an
// inline error instead of failing the request.
func (s *Server) handleAddTodo(c *gin.Context) {
	if _, err := s.todos.Add(c.PostForm("text")); err != nil {
		s.renderTodos(c, "Enter a task.")
		return
	}
	s.renderTodos(c, "")
}

func (s *Server) handleToggleTodo(c *gin.Context) {
	id, ok := s.todoID(c)
	if !ok {
		return
	}
	if err := s.todos.Toggle(id); err != nil {
		s.todoError(c, err)
		return
	}
	s.renderTodos(c, "")
}

func (s *Server) handleDeleteTodo(c *gin.Context) {
	id, ok := s.todoID(c)
	if !ok {
		return
	}
	if err := s.todos.Delete(id); err != nil {
		s.todoError(c, err)
		return
	}
	s.renderTodos(c, "")
}

func (s *Server) renderTodos(c *gin.Context, errMsg string) {
	s.fragment(c, "todos", "todos.html", gin.H{
		"Todos": s.todos.List(),
		"Error": errMsg,
	})
}

func (s *Server) todoID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
		return 0, false
	}
	return id, true
}

func (s *Server) todoError(c *gin.Context, err error) {
	if errors.Is(err, todos.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
