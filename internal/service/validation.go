package service

import (
	"html"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// passwordSymbols is the fixed set of symbols the password policy accepts.
const passwordSymbols = "@$!%*?&"

var (
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	timeOfDayRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// validateEmail checks the syntactic shape of an email address.
func validateEmail(email string) error {
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return invalidField("email", "please enter a valid email")
	}
	return nil
}

// validatePassword enforces the registration password policy: at least 8
// characters, one lowercase, one uppercase, one digit and one symbol from
// the fixed set, with no characters outside that alphabet.
func validatePassword(password string) error {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	length := 0
	for _, r := range password {
		length++
		switch {
		case unicode.IsLower(r) && r <= unicode.MaxASCII:
			hasLower = true
		case unicode.IsUpper(r) && r <= unicode.MaxASCII:
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		default:
			return invalidField("password", "password contains characters outside the allowed set")
		}
	}
	if length < 8 || !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		return invalidField("password",
			"password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	return nil
}

// validateUsername checks the 3-30 character bound after trimming.
func validateUsername(username string) error {
	trimmed := strings.TrimSpace(username)
	if len(trimmed) < 3 || len(trimmed) > 30 {
		return invalidField("username", "invalid username: it must be between 3 and 30 characters")
	}
	return nil
}

// validateGoal checks for a non-empty goal of at most 30 characters.
func validateGoal(goal string) error {
	trimmed := strings.TrimSpace(goal)
	if trimmed == "" || len(trimmed) > 30 {
		return invalidField("goal", "invalid goal: it must be a non-empty string with a maximum of 30 characters")
	}
	return nil
}

// validatePositive checks a physical measurement such as height or weight.
func validatePositive(field string, value float64) error {
	if value <= 0 {
		return invalidField(field, "invalid %s value: %s must be a positive number", field, field)
	}
	return nil
}

// validateTimeOfDay accepts the HH:MM shape of a scheduled time.
func validateTimeOfDay(value string) error {
	if !timeOfDayRegex.MatchString(value) {
		return invalidField("scheduledTime", "invalid scheduled time format, use HH:MM")
	}
	return nil
}

// parseCalendarDate parses a calendar date, preferring the YYYY-MM-DD form
// and falling back to RFC 3339 timestamps.
func parseCalendarDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, invalidField(field, "invalid %s format", field)
}

// sanitizeText trims a user-supplied string and HTML-escapes it before it
// is stored.
func sanitizeText(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// normalizeEmail lowercases and trims an email for storage and comparison;
// uniqueness is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
