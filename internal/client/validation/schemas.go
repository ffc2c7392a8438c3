// Package validation holds the form schemas the CLI checks before a request
// leaves the client, so users get field-level feedback without a round trip.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginForm is the credential pair for sign-in.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=128"`
}

// RegisterForm is the sign-up form.
type RegisterForm struct {
	FullName string `validate:"required,min=2,max=80"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=128"`
}

// ArticleForm covers both create and update of an article.
type ArticleForm struct {
	Title      string `validate:"required,min=2,max=220"`
	Excerpt    string `validate:"max=600"`
	Content    string `validate:"required"`
	Keywords   string `validate:"max=500"`
	Status     string `validate:"required,oneof=DRAFT PUBLISHED"`
	CategoryID int64  `validate:"omitempty,gt=0"`
}

// CommentForm is a single comment body.
type CommentForm struct {
	Content string `validate:"required,max=5000"`
}

// fieldLabels are the user-facing names shown in validation messages.
var fieldLabels = map[string]string{
	"Email":      "email",
	"Password":   "password",
	"FullName":   "full name",
	"Title":      "title",
	"Excerpt":    "excerpt",
	"Content":    "content",
	"Keywords":   "keywords",
	"Status":     "status",
	"CategoryID": "category",
}

// Check validates a form struct and returns a single human-readable error for
// the first failing field, or nil when the form is valid.
func Check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return errors.New(message(verrs[0]))
}

func message(e validator.FieldError) string {
	field := fieldLabels[e.Field()]
	if field == "" {
		field = e.Field()
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be a positive id", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
