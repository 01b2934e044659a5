package helpers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
)

// SlugFallback is stored when a product name normalizes to nothing.
const SlugFallback = "unnamed-product"

var slugPattern = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug lowercases the name, collapses runs of non-alphanumerics into a
// single hyphen and trims leading/trailing hyphens. Idempotent. Empty input
// (or input that normalizes to nothing) yields SlugFallback.
func GenerateSlug(s string) string {
	s = strings.ToLower(s)
	s = slugPattern.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return SlugFallback
	}
	return s
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", err.Field())
		case "number":
			errorMessages[field] = fmt.Sprintf("%s must contain digits only.", err.Field())
		case "len":
			errorMessages[field] = fmt.Sprintf("%s must be exactly %s characters.", err.Field(), err.Param())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s.", err.Field(), err.Param())
		case "eq":
			errorMessages[field] = fmt.Sprintf("%s must be %q.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("Validation %s failed on field %s.", err.Tag(), err.Field())
		}
	}
	return errorMessages
}

func GetUserIDFromContext(r *http.Request) string {
	if userID, ok := r.Context().Value(ContextKeyUserID).(string); ok {
		return userID
	}
	return ""
}
