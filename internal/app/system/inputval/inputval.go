// Package inputval provides payload validation using waffle/pantry/validate.
//
// This package wraps pantry/validate to provide a convenient interface for
// validating JSON payloads with struct tags. Define an input struct with
// validate tags, decode the request body into it, and call Validate to get
// user-friendly error messages.
//
// Example:
//
//	type CreateMessageInput struct {
//	    Name  string `json:"name" validate:"required" label:"Name"`
//	    Email string `json:"email" validate:"required,email" label:"Email"`
//	}
//
//	if result := inputval.Validate(input); result.HasErrors() {
//	    jsonutil.BadRequest(w, result.First())
//	    return
//	}
package inputval

import (
	"net/mail"
	"reflect"
	"strings"
	"sync"

	"github.com/dalemusser/folioserve/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/validate"
)

// Result holds validation results with user-friendly messages.
type Result struct {
	Errors []FieldError
}

// FieldError represents a validation error for a single field.
type FieldError struct {
	Field   string
	Label   string
	Message string
}

// HasErrors returns true if there are any validation errors.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// First returns the first error message, or empty string if no errors.
func (r *Result) First() string {
	if len(r.Errors) > 0 {
		return r.Errors[0].Message
	}
	return ""
}

// All returns all error messages joined with "; ".
func (r *Result) All() string {
	if len(r.Errors) == 0 {
		return ""
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// customValidator is a singleton validator with domain rules registered.
var (
	customValidator *validate.Validator
	validatorOnce   sync.Once
)

// getValidator returns the singleton validator with custom rules.
func getValidator() *validate.Validator {
	validatorOnce.Do(func() {
		customValidator = validate.New(validate.WithStopOnFirstError())

		// gradientcolor: validates against the closed skill-bar color set
		customValidator.RegisterRuleFunc("gradientcolor", func(value any) bool {
			if s, ok := value.(string); ok {
				return models.IsValidGradientColor(s)
			}
			return false
		}, "gradientcolor")

		// barheight: validates against the closed skill-bar height set
		customValidator.RegisterRuleFunc("barheight", func(value any) bool {
			if s, ok := value.(string); ok {
				return models.IsValidBarHeight(s)
			}
			return false
		}, "barheight")

		// fieldtype: validates against the closed contact form input type set
		customValidator.RegisterRuleFunc("fieldtype", func(value any) bool {
			if s, ok := value.(string); ok {
				return models.IsValidFormFieldType(s)
			}
			return false
		}, "fieldtype")

		// contactstatus: validates against the inbox lifecycle statuses
		customValidator.RegisterRuleFunc("contactstatus", func(value any) bool {
			if s, ok := value.(string); ok {
				return models.IsValidContactStatus(strings.ToLower(strings.TrimSpace(s)))
			}
			return false
		}, "contactstatus")

		// mobile: optional leading +, then 1-16 digits
		customValidator.RegisterRuleFunc("mobile", func(value any) bool {
			if s, ok := value.(string); ok {
				return IsValidMobile(s)
			}
			return false
		}, "mobile")
	})
	return customValidator
}

// Validate validates a struct and returns a Result with user-friendly errors.
// The struct should have `validate` tags for rules and optional `label` tags
// for user-friendly field names.
//
// Supported validation rules (from pantry/validate):
//   - required: field must not be empty
//   - email: field must be a valid email address
//   - oneof=a b c: field must be one of the specified values
//   - min=N: string length or numeric value must be >= N
//   - max=N: string length or numeric value must be <= N
//
// Custom validation rules (registered by this package):
//   - gradientcolor: field must be a valid skill-bar gradient color
//   - barheight: field must be a valid skill-bar height
//   - fieldtype: field must be a valid contact form input type
//   - contactstatus: field must be a valid inbox status
//   - mobile: field must be a phone number (optional +, 1-16 digits)
func Validate(s any) *Result {
	result := &Result{}

	v := getValidator()
	err := v.Struct(s)
	if err == nil {
		return result
	}

	labels := getFieldLabels(s)

	if errs, ok := err.(validate.Errors); ok {
		for _, e := range errs {
			label := labels[e.Field]
			if label == "" {
				label = e.Field
			}

			msg := formatMessage(label, e.Rule, e.Param)
			result.Errors = append(result.Errors, FieldError{
				Field:   e.Field,
				Label:   label,
				Message: msg,
			})
		}
	}

	return result
}

// getFieldLabels extracts the "label" tag from struct fields.
func getFieldLabels(s any) map[string]string {
	labels := make(map[string]string)

	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return labels
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		// Field name follows the json tag when present.
		fieldName := field.Name
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" && parts[0] != "-" {
				fieldName = parts[0]
			}
		}

		if label := field.Tag.Get("label"); label != "" {
			labels[fieldName] = label
		}
	}

	return labels
}

// formatMessage creates a user-friendly message for a validation rule.
func formatMessage(label, rule, param string) string {
	switch rule {
	case "required":
		return label + " is required."
	case "email":
		return "A valid email address is required."
	case "oneof", "enum":
		return label + " must be one of: " + strings.ReplaceAll(param, " ", ", ") + "."
	case "min":
		return label + " must be at least " + param + " characters."
	case "max":
		return label + " must be at most " + param + " characters."
	case "gradientcolor":
		return label + " must be one of: " + strings.Join(models.GradientColors(), ", ") + "."
	case "barheight":
		return label + " must be one of: " + strings.Join(models.BarHeights(), ", ") + "."
	case "fieldtype":
		return label + " must be one of: " + strings.Join(models.FormFieldTypes(), ", ") + "."
	case "contactstatus":
		return label + " must be one of: " + strings.Join(models.ContactStatuses(), ", ") + "."
	case "mobile":
		return label + " must be a phone number (digits with an optional leading +)."
	default:
		return label + " is invalid."
	}
}

// IsValidEmail checks if the given string has a valid email format.
//
// This function uses Go's net/mail.ParseAddress for RFC 5322 compliant
// validation.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	// ParseAddress accepts "Name <email>" format, so verify the address
	// matches what we passed in (just the email part).
	return addr.Address == email
}

// IsValidMobile checks if the given string is a phone number: an optional
// leading +, then 1-16 digits after separators are stripped.
func IsValidMobile(mobile string) bool {
	s := strings.TrimSpace(mobile)
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '-', '.', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()
	s = strings.TrimPrefix(s, "+")
	if len(s) == 0 || len(s) > 16 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateMapLocation checks the numeric bounds of a map location. Boundary
// values are accepted.
func ValidateMapLocation(loc models.MapLocation) string {
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return "Latitude must be between -90 and 90."
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return "Longitude must be between -180 and 180."
	}
	if loc.Zoom < 1 || loc.Zoom > 20 {
		return "Zoom must be between 1 and 20."
	}
	return ""
}

// ValidateSkills checks every bar in a skills block: percent range, color
// and height enums, and a non-empty name.
func ValidateSkills(block models.SkillsBlock) string {
	for _, sk := range block.Skills {
		if strings.TrimSpace(sk.Name) == "" {
			return "Each skill needs a name."
		}
		if sk.Percent < 0 || sk.Percent > 100 {
			return "Skill percent for " + sk.Name + " must be between 0 and 100."
		}
		if !models.IsValidGradientColor(sk.Color) {
			return "Skill color for " + sk.Name + " must be one of: " + strings.Join(models.GradientColors(), ", ") + "."
		}
		if !models.IsValidBarHeight(sk.Height) {
			return "Skill height for " + sk.Name + " must be one of: " + strings.Join(models.BarHeights(), ", ") + "."
		}
	}
	return ""
}

// UniqueFieldNames checks that every form field name appears exactly once.
// Returns the first duplicated name, or empty string when all are unique.
func UniqueFieldNames(fields []models.FormField) string {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		name := strings.TrimSpace(f.Name)
		if seen[name] {
			return name
		}
		seen[name] = true
	}
	return ""
}
