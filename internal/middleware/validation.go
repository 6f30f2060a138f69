package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ValidationRule defines a single validation rule
type ValidationRule struct {
	Field         string                  // Field name to validate
	Required      bool                    // Whether the field is required
	Type          string                  // string, number, boolean, uuid, email, array or object
	MinLength     int                     // Minimum length for strings
	MaxLength     int                     // Maximum length for strings
	Pattern       *regexp.Regexp          // Format strings must match
	Min           *float64                // Minimum value for numbers
	Max           *float64                // Maximum value for numbers
	AllowedValues []string                // List of allowed values
	Sanitize      bool                    // Trim and strip NUL bytes
	Custom        func(interface{}) error // Custom validation function
}

// ValidationConfig holds validation rules for an endpoint
type ValidationConfig struct {
	Rules              []ValidationRule
	MaxBodySize        int64
	AllowUnknownFields bool
}

var (
	EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	PhoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,19}$`)
	SlugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidationError describes one rejected field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the 400 response body of ValidateInput
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// ValidatedBodyKey holds the sanitized body in the gin context.
const ValidatedBodyKey = "validatedBody"

// ValidateInput checks the JSON body against config and replaces the
// request body with the sanitized version.
func ValidateInput(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.MaxBodySize > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
					"error": fmt.Sprintf("Request body too large. Maximum size: %d bytes", config.MaxBodySize),
				})
				return
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxBodySize)
		}

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil || body == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":          "Invalid JSON in request body",
				"correlation_id": GetCorrelationID(c),
			})
			return
		}

		if errs := validateFields(body, config.Rules, config.AllowUnknownFields); len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrors{Errors: errs})
			return
		}

		bodyBytes, _ := json.Marshal(body)
		c.Set(ValidatedBodyKey, body)
		c.Request.Body = NewBodyReader(bodyBytes)
		c.Request.ContentLength = int64(len(bodyBytes))

		c.Next()
	}
}

func validateFields(data map[string]interface{}, rules []ValidationRule, allowUnknown bool) []ValidationError {
	var errs []ValidationError
	known := make(map[string]bool, len(rules))

	fail := func(field string, err error) {
		errs = append(errs, ValidationError{Field: field, Message: err.Error()})
	}

	for _, rule := range rules {
		known[rule.Field] = true
		value, exists := data[rule.Field]

		if rule.Required && (!exists || value == nil || value == "") {
			errs = append(errs, ValidationError{Field: rule.Field, Message: fmt.Sprintf("%s is required", rule.Field)})
			continue
		}
		if !exists || value == nil {
			continue
		}

		var err error
		switch rule.Type {
		case "string":
			if err = validateString(value, rule); err == nil && rule.Sanitize {
				data[rule.Field] = sanitizeString(value.(string))
			}
		case "number":
			err = validateNumber(value, rule)
		case "boolean":
			if _, ok := value.(bool); !ok {
				err = fmt.Errorf("must be a boolean")
			}
		case "uuid":
			err = validateUUID(value)
		case "email":
			if err = validateEmail(value); err == nil {
				data[rule.Field] = strings.ToLower(sanitizeString(value.(string)))
			}
		case "array":
			if _, ok := value.([]interface{}); !ok {
				err = fmt.Errorf("must be an array")
			}
		case "object":
			if _, ok := value.(map[string]interface{}); !ok {
				err = fmt.Errorf("must be an object")
			}
		}
		if err != nil {
			fail(rule.Field, err)
			continue
		}

		if rule.Custom != nil {
			if err := rule.Custom(value); err != nil {
				fail(rule.Field, err)
			}
		}
	}

	if !allowUnknown {
		for field := range data {
			if !known[field] {
				errs = append(errs, ValidationError{Field: field, Message: "unknown field"})
			}
		}
	}

	return errs
}

func validateString(value interface{}, rule ValidationRule) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}

	length := utf8.RuneCountInString(strings.TrimSpace(str))
	if rule.MinLength > 0 && length < rule.MinLength {
		return fmt.Errorf("must be at least %d characters long", rule.MinLength)
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return fmt.Errorf("must be at most %d characters long", rule.MaxLength)
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(str) {
		return fmt.Errorf("invalid format")
	}
	if len(rule.AllowedValues) > 0 && !slices.Contains(rule.AllowedValues, str) {
		return fmt.Errorf("must be one of: %s", strings.Join(rule.AllowedValues, ", "))
	}

	return nil
}

func validateNumber(value interface{}, rule ValidationRule) error {
	num, ok := value.(float64)
	if !ok {
		return fmt.Errorf("must be a number")
	}
	if rule.Min != nil && num < *rule.Min {
		return fmt.Errorf("must be at least %v", *rule.Min)
	}
	if rule.Max != nil && num > *rule.Max {
		return fmt.Errorf("must be at most %v", *rule.Max)
	}
	return nil
}

func validateUUID(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if _, err := uuid.Parse(str); err != nil {
		return fmt.Errorf("must be a valid UUID")
	}
	return nil
}

func validateEmail(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if !EmailRegex.MatchString(strings.TrimSpace(str)) {
		return fmt.Errorf("must be a valid email address")
	}
	return nil
}

// sanitizeString strips NUL bytes and surrounding whitespace. Output is
// escaped where it is rendered, not here.
func sanitizeString(input string) string {
	return strings.TrimSpace(strings.ReplaceAll(input, "\x00", ""))
}

func float64Ptr(f float64) *float64 {
	return &f
}
