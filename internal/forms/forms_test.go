package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asw0210/htmx-demo/internal/forms"
)

func TestCheckContact(t *testing.T) {
	v := forms.New()

	cases := []struct {
		name    string
		form    forms.ContactForm
		emailOK bool
		zipOK   bool
	}{
		{"both valid", forms.ContactForm{Email: "test@example.com", Zipcode: "12345"}, true, true},
		{"bad email", forms.ContactForm{Email: "invalid", Zipcode: "12345"}, false, true},
		{"bad zip letters", forms.ContactForm{Email: "test@example.com", Zipcode: "abc"}, true, false},
		{"bad zip length", forms.ContactForm{Email: "test@example.com", Zipcode: "1234"}, true, false},
		{"signed zip", forms.ContactForm{Email: "test@example.com", Zipcode: "+1234"}, true, false},
		{"negative zip", forms.ContactForm{Email: "test@example.com", Zipcode: "-1234"}, true, false},
		{"decimal zip", forms.ContactForm{Email: "test@example.com", Zipcode: "1.234"}, true, false},
		{"both empty", forms.ContactForm{}, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := v.CheckContact(tc.form)
			assert.Equal(t, tc.emailOK, result.EmailOK)
			assert.Equal(t, tc.zipOK, result.ZipOK)
			assert.Equal(t, tc.form.Email, result.Email)
			assert.Equal(t, tc.form.Zipcode, result.Zipcode)
		})
	}
}
