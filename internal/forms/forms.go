// Package forms validates the demo form submissions.
package forms

import (
	"github.com/go-playground/validator/v10"
)

// ContactForm is the inline-validation demo payload.
type ContactForm struct {
	Email   string `form:"email" validate:"required,email"`
	Zipcode string `form:"zipcode" validate:"required,len=5,number"`
}

// Result reports per-field validation outcomes for the fragment template.
type Result struct {
	Email   string
	Zipcode string
	EmailOK bool
	ZipOK   bool
}

// Validator wraps a shared validator instance.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// CheckContact validates each field independently so the fragment can show
// pass/fail per field rather than failing the whole form.
func (v *Validator) CheckContact(form ContactForm) Result {
	return Result{
		Email:   form.Email,
		Zipcode: form.Zipcode,
		EmailOK: v.validate.Var(form.Email, "required,email") == nil,
		ZipOK:   v.validate.Var(form.Zipcode, "required,len=5,number") == nil,
	}
}
