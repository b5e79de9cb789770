package config

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasttemplate"
)

// RequestLogTags are the variables accepted by request_log_format.
var RequestLogTags = []string{"timestamp", "method", "url", "request_id"}

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "gt":
		return fmt.Sprintf("must be > %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "hostname_port":
		return "must be in format 'host:port' (host may be empty)"
	case "log_template":
		return fmt.Sprintf("must be a valid template using only: {{%s}}", strings.Join(RequestLogTags, "}}, {{"))
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // For menu items: "menu_item[<id>]"
	FieldPath string // Dot-notation field path (e.g., "general.listen_addr", "category")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("log_template", validateLogTemplate); err != nil {
		panic(err)
	}

	// Report field names as they appear in the TOML file
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: fasttemplate with known tags only
func validateLogTemplate(fl validator.FieldLevel) bool {
	return ValidateRequestLogFormat(fl.Field().String()) == nil
}

// ValidateRequestLogFormat checks that format parses and uses only RequestLogTags.
func ValidateRequestLogFormat(format string) error {
	t, err := fasttemplate.NewTemplate(format, "{{", "}}")
	if err != nil {
		return err
	}

	_, err = t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		for _, known := range RequestLogTags {
			if tag == known {
				return 0, nil
			}
		}
		return 0, fmt.Errorf("unknown tag: %s", tag)
	})
	return err
}
