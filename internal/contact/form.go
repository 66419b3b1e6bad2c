// Package contact implements the contact form's validation rules and its
// simulated submission lifecycle. Nothing here performs network I/O.
package contact

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Subject enumerates the topics a visitor may pick.
type Subject string

const (
	SubjectSales       Subject = "sales"
	SubjectSupport     Subject = "support"
	SubjectPartnership Subject = "partnership"
	SubjectOther       Subject = "other"
)

// Subjects returns the selectable subjects in display order.
func Subjects() []Subject {
	return []Subject{SubjectSales, SubjectSupport, SubjectPartnership, SubjectOther}
}

// MessageKey is the catalog key of the subject's label.
func (s Subject) MessageKey() string {
	return "contact.form.subjects." + string(s)
}

// MinMessageLength is the minimum number of characters in a message.
const MinMessageLength = 10

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in tab order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}
}

// Form carries the values a visitor typed.
type Form struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,site_email"`
	Subject string `form:"subject" validate:"required,oneof=sales support partnership other"`
	Message string `form:"message" validate:"required,min=10"`
}

// Normalized trims surrounding whitespace from every field.
func (f Form) Normalized() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// FieldError describes why one field was rejected.
type FieldError struct {
	Field Field
	// Rule is the validator tag that failed ("required", "site_email", ...).
	Rule string
	// MessageKey is the catalog key of the text shown under the field.
	MessageKey string
}

// ValidationErrors is returned by Validate when at least one field is invalid.
// It holds at most one entry per field, in tab order.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, string(fe.Field)+": "+fe.Rule)
	}
	return "invalid contact form: " + strings.Join(parts, ", ")
}

// For returns the error recorded for field, if any.
func (v ValidationErrors) For(field Field) (FieldError, bool) {
	for _, fe := range v {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			if name := field.Tag.Get("form"); name != "" {
				return name
			}
			return field.Name
		})

		_ = v.RegisterValidation("site_email", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the normalized form and returns ValidationErrors when any
// field is rejected.
func Validate(f Form) error {
	err := validatorInstance().Struct(f.Normalized())
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	byField := make(map[Field]FieldError, len(ves))
	for _, ve := range ves {
		field := Field(ve.Field())
		if _, seen := byField[field]; seen {
			continue
		}
		byField[field] = FieldError{Field: field, Rule: ve.Tag(), MessageKey: messageKey(field, ve.Tag())}
	}

	out := make(ValidationErrors, 0, len(byField))
	for _, field := range Fields() {
		if fe, ok := byField[field]; ok {
			out = append(out, fe)
		}
	}
	return out
}

// ValidateField checks a single field in isolation, as done while the user
// moves focus away from it.
func ValidateField(f Form, field Field) (FieldError, bool) {
	var verrs ValidationErrors
	if err := Validate(f); !errors.As(err, &verrs) {
		return FieldError{}, false
	}
	return verrs.For(field)
}

func messageKey(field Field, rule string) string {
	switch {
	case rule == "required":
		return "contact.errors." + string(field) + "_required"
	case field == FieldEmail:
		return "contact.errors.email_invalid"
	case field == FieldSubject:
		return "contact.errors.subject_invalid"
	case field == FieldMessage:
		return "contact.errors.message_min"
	default:
		return "contact.errors." + string(field) + "_required"
	}
}
