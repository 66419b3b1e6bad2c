package contact

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: string(SubjectSupport),
		Message: "Workers keep restarting under load.",
	}
}

func requireFieldError(t *testing.T, err error, field Field) FieldError {
	t.Helper()
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
	fe, ok := verrs.For(field)
	require.True(t, ok, "expected an error for %s in %v", field, verrs)
	return fe
}

func TestValidateAcceptsValidForm(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(validForm()))
}

func TestValidateRejectsMalformedEmails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
	}{
		{"missing at", "ada.example.com"},
		{"missing local part", "@example.com"},
		{"missing domain", "ada@"},
		{"missing domain before tld", "ada@.com"},
		{"missing tld", "ada@example"},
		{"empty tld", "ada@example."},
		{"inner whitespace", "ada lovelace@example.com"},
		{"double at", "ada@@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Email = tt.email

			fe := requireFieldError(t, Validate(form), FieldEmail)
			assert.Equal(t, "site_email", fe.Rule)
			assert.Equal(t, "contact.errors.email_invalid", fe.MessageKey)
		})
	}
}

func TestValidateRejectsShortMessages(t *testing.T) {
	t.Parallel()

	for n := 1; n < MinMessageLength; n++ {
		form := validForm()
		form.Message = strings.Repeat("x", n)

		fe := requireFieldError(t, Validate(form), FieldMessage)
		assert.Equal(t, "min", fe.Rule)
		assert.Equal(t, "contact.errors.message_min", fe.MessageKey)
	}

	form := validForm()
	form.Message = strings.Repeat("x", MinMessageLength)
	require.NoError(t, Validate(form))
}

func TestValidateCountsCharactersNotBytes(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Message = "守护进程守护进程守护" // ten characters, thirty bytes
	require.NoError(t, Validate(form))

	form.Message = "守护进程守护进程守"
	requireFieldError(t, Validate(form), FieldMessage)
}

func TestValidateRequiredFields(t *testing.T) {
	t.Parallel()

	err := Validate(Form{Name: "   "})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 4)

	var order []Field
	for _, fe := range verrs {
		order = append(order, fe.Field)
		assert.Equal(t, "required", fe.Rule)
		assert.Equal(t, "contact.errors."+string(fe.Field)+"_required", fe.MessageKey)
	}
	assert.Equal(t, Fields(), order)
}

func TestValidateRejectsUnknownSubject(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Subject = "pricing"

	fe := requireFieldError(t, Validate(form), FieldSubject)
	assert.Equal(t, "contact.errors.subject_invalid", fe.MessageKey)
}

func TestValidateFieldIsolatesOneField(t *testing.T) {
	t.Parallel()

	form := Form{Email: "nope"}

	fe, ok := ValidateField(form, FieldEmail)
	require.True(t, ok)
	assert.Equal(t, FieldEmail, fe.Field)

	_, ok = ValidateField(validForm(), FieldEmail)
	assert.False(t, ok)
}

func TestSubjectsAreExactlyTheFourTopics(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Subject{"sales", "support", "partnership", "other"}, Subjects())
	assert.Equal(t, "contact.form.subjects.sales", SubjectSales.MessageKey())
}
