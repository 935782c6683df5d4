package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Name settings fields by their config key in errors.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if key := f.Tag.Get("setting"); key != "" {
			return key
		}
		return f.Name
	})
	return v
}

// present reports whether value has visible content.
func present(value string) bool {
	return validate.Var(strings.TrimSpace(value), "required") == nil
}

// validateSettings checks s against the rules in its validate tags.
func validateSettings(s domain.Settings) error {
	err := validate.Struct(s)
	var failed validator.ValidationErrors
	if !errors.As(err, &failed) {
		return err
	}

	problems := make([]string, 0, len(failed))
	for _, fe := range failed {
		problems = append(problems, describeFailure(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(problems, "; "))
}

func describeFailure(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q",
			fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
}

// missingFields validates values against the required fields of in's
// schema and returns the failing names in schema order.
func missingFields(in domain.Integration, values map[string]string) []string {
	data := make(map[string]any, len(in.Schema))
	for _, f := range in.Schema {
		data[f.Name] = strings.TrimSpace(values[f.Name])
	}
	rules := make(map[string]any, len(in.Schema))
	for _, name := range in.RequiredFields() {
		rules[name] = "required"
	}

	failed := validate.ValidateMap(data, rules)
	var missing []string
	for _, f := range in.Schema {
		if _, ok := failed[f.Name]; ok {
			missing = append(missing, f.Name)
		}
	}
	return missing
}
