// Package validator plugs go-playground/validator into echo.
package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"crimson/internal/domain/entity"
	"crimson/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// ValidationError maps json field names to the rule they broke.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New returns a validator that reports json field names and knows the
// marketplace enums.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	// Registration only fails on malformed tag names.
	_ = v.RegisterValidation("listingtype", func(fl playground.FieldLevel) bool {
		return entity.ListingType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("categorygroup", func(fl playground.FieldLevel) bool {
		return entity.CategoryGroup(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("notblank", func(fl playground.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &CustomValidator{validate: v}
}

// Validate checks struct tags on i.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = describe(fe)
	}

	return &ValidationError{Fields: fields}
}

func describe(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of " + fe.Param()
	case "listingtype":
		return "must be one of book item service request"
	case "categorygroup":
		return "must be one of book marketplace service request"
	case "uuid", "uuid4":
		return "must be a valid id"
	default:
		return "failed " + fe.Tag()
	}
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form", "query"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}
