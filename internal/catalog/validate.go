package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidBook is returned when a title or author cannot be stored.
var ErrInvalidBook = errors.New("invalid book")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "\r\n")
	})
	return v
}

// Validate reports whether b can be encoded without ambiguity.
func Validate(b Book) error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidBook, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "notblank":
			msgs = append(msgs, field+" is required")
		case "excludesall":
			msgs = append(msgs, fmt.Sprintf("%s must not contain %q", field, Delimiter))
		case "singleline":
			msgs = append(msgs, field+" must not contain line breaks")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidBook, strings.Join(msgs, "; "))
}
