package validate

import "fmt"

// Contact form field limits. The /api/limits endpoint reports the same values.
const (
	MaxContactNameLength    = 100
	MaxContactEmailLength   = 254
	MaxContactMessageLength = 5000
)

func checkLen(value string, max int, field string) string {
	if len(value) > max {
		return fmt.Sprintf("%s must be %d characters or fewer", field, max)
	}
	return ""
}

func ContactName(s string) string    { return checkLen(s, MaxContactNameLength, "name") }
func ContactEmail(s string) string   { return checkLen(s, MaxContactEmailLength, "email") }
func ContactMessage(s string) string { return checkLen(s, MaxContactMessageLength, "message") }

// FieldLimits returns a map of field names to max lengths for the /api/limits endpoint.
func FieldLimits() map[string]int {
	return map[string]int{
		"name":    MaxContactNameLength,
		"email":   MaxContactEmailLength,
		"message": MaxContactMessageLength,
	}
}
