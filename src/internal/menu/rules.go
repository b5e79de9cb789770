package menu

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const invalidValue = "Invalid value"

var (
	validate = validator.New()

	// Decimal floats with optional exponent: "9.5" and "1e3" pass, "Inf" and "0x1p3" do not.
	floatRegexp = regexp.MustCompile(`^[-+]?([0-9]+)?(\.[0-9]*)?([eE][-+]?[0-9]+)?$`)
)

// Check reports whether a body value satisfies a rule. Absent values are passed as nil.
type Check func(value any) bool

// Rule is a single check on one body field.
type Rule struct {
	Field    string
	Message  string
	Optional bool
	Check    Check
}

// Violation is a failed rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the ordered list of failed rules. It implements error.
type Violations []Violation

func (v Violations) Error() string {
	if len(v) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(v)))
	for i, violation := range v {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, violation.Field, violation.Message))
	}
	return sb.String()
}

// Messages returns the human-readable messages in rule order.
func (v Violations) Messages() []string {
	messages := make([]string, 0, len(v))
	for _, violation := range v {
		messages = append(messages, violation.Message)
	}
	return messages
}

// CreateRules are applied to new items. Every field but "available" is required.
func CreateRules() []Rule {
	categories := make([]string, 0, len(Categories))
	for _, c := range Categories {
		categories = append(categories, string(c))
	}

	return []Rule{
		{Field: "name", Message: invalidValue, Check: isString},
		{Field: "name", Message: "Name of the item must be at least 3 characters long.", Check: textMatches("min=3")},
		{Field: "description", Message: invalidValue, Check: isString},
		{Field: "description", Message: "Description must be at least 10 characters long.", Check: textMatches("min=10")},
		{Field: "price", Message: "Price must be a number greater than 0.", Check: isPositiveFloat},
		{Field: "category", Message: invalidValue, Check: isString},
		{
			Field:   "category",
			Message: "Category must be one of: " + strings.Join(categories, ", ") + ".",
			Check:   textMatches("oneof=" + strings.Join(categories, " ")),
		},
		{Field: "ingredients", Message: "Ingredients must be an array with at least one ingredient.", Check: isIngredientList},
		{Field: "available", Message: "Available must be a boolean", Optional: true, Check: isBoolean},
	}
}

// UpdateRules are the create rules with every field optional.
func UpdateRules() []Rule {
	rules := CreateRules()
	for i := range rules {
		rules[i].Optional = true
	}
	return rules
}

// Validate runs the rules against a decoded JSON object. Fields are only
// returned when no rule failed.
func Validate(body map[string]any, rules []Rule) (Fields, Violations) {
	var violations Violations

	for _, rule := range rules {
		value, present := body[rule.Field]
		if !present && rule.Optional {
			continue
		}
		if !present {
			value = nil
		}
		if !rule.Check(value) {
			violations = append(violations, Violation{Field: rule.Field, Message: rule.Message})
		}
	}

	if len(violations) > 0 {
		return Fields{}, violations
	}

	return decodeFields(body), nil
}

// ValidateItem checks a complete item with the create rules.
func ValidateItem(item MenuItem) Violations {
	_, violations := Validate(item.Body(), CreateRules())
	return violations
}

// decodeFields converts already validated values into typed fields.
func decodeFields(body map[string]any) Fields {
	var f Fields

	if v, ok := body["name"]; ok {
		name, _ := textOf(v)
		f.Name = &name
	}
	if v, ok := body["description"]; ok {
		description, _ := textOf(v)
		f.Description = &description
	}
	if v, ok := body["price"]; ok {
		price, _ := floatOf(v)
		f.Price = &price
	}
	if v, ok := body["category"]; ok {
		text, _ := textOf(v)
		category := Category(text)
		f.Category = &category
	}
	if v, ok := body["ingredients"]; ok {
		values, _ := v.([]any)
		f.Ingredients = make([]string, 0, len(values))
		for _, value := range values {
			text, _ := value.(string)
			f.Ingredients = append(f.Ingredients, text)
		}
	}
	if v, ok := body["available"]; ok {
		available := toBoolean(v)
		f.Available = &available
	}

	return f
}

func isString(value any) bool {
	_, ok := value.(string)
	return ok
}

// textMatches applies a validator tag to the textual form of a scalar.
func textMatches(tag string) Check {
	return func(value any) bool {
		text, ok := textOf(value)
		if !ok {
			return false
		}
		return validate.Var(text, tag) == nil
	}
}

func isPositiveFloat(value any) bool {
	f, ok := floatOf(value)
	if !ok {
		return false
	}
	return validate.Var(f, "gt=0") == nil
}

// isIngredientList accepts a non-empty array of strings. Numbers, null and
// nested values are rejected so the stored list is exactly what was sent.
func isIngredientList(value any) bool {
	values, ok := value.([]any)
	if !ok || validate.Var(values, "min=1") != nil {
		return false
	}
	for _, v := range values {
		if !isString(v) {
			return false
		}
	}
	return true
}

func isBoolean(value any) bool {
	if _, ok := value.(bool); ok {
		return true
	}
	text, ok := textOf(value)
	if !ok {
		return false
	}
	return validate.Var(text, "oneof=true false 1 0") == nil
}

func toBoolean(value any) bool {
	if b, ok := value.(bool); ok {
		return b
	}
	text, _ := textOf(value)
	return text != "0" && text != "false" && text != ""
}

// textOf returns the string form of a scalar. Null and absent values are empty;
// arrays and objects have no textual form.
func textOf(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

func floatOf(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number, string:
		text, _ := textOf(v)
		if text == "" || text == "." || text == "+" || text == "-" || !floatRegexp.MatchString(text) {
			return 0, false
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
