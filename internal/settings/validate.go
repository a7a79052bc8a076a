package settings

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"medconsult/internal/i18n"
	"medconsult/internal/models"
)

// ErrInvalidEdit is returned when an edit would break a Settings invariant.
var ErrInvalidEdit = errors.New("invalid settings edit")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if i := strings.IndexByte(name, ','); i >= 0 {
			name = name[:i]
		}
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("langcode", func(fl validator.FieldLevel) bool {
		return i18n.IsSupported(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("settings: register langcode validation: %v", err))
	}
	return v
}

// Validate checks that s satisfies the Settings invariants.
func Validate(s models.Settings) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", fe.Namespace(), describe(fe)))
	}
	sort.Strings(msgs)
	return fmt.Errorf("%w: %s", ErrInvalidEdit, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "langcode":
		return fmt.Sprintf("has unsupported language %q", fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}
