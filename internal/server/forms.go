package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asw0210/htmx-demo/internal/forms"
)

// handleValidate renders per-field pass/fail so the form can show inline
// feedback; invalid input is a 200 with the failures, never an error status.
func (s *Server) handleValidate(c *gin.Context) {
	var form forms.ContactForm
	// Binding errors surface as failed field checks below.
	_ = c.ShouldBind(&form)
	result := s.forms.CheckContact(form)
	s.fragment(c, "validate", "validation.html", gin.H{"Result": result})
}

func (s *Server) handleValidateRequired(c *gin.Context) {
	s.fragment(c, "validate-required", "validate_required.html", gin.H{
		"Username": c.PostForm("username"),
		"Now":      time.Now(),
	})
}
