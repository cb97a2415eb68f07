package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Abcdef1!", false},
		{"valid with all symbols", "aB3@$!%*?&", false},
		{"too short", "Ab1!", true},
		{"missing uppercase", "abcdef1!", true},
		{"missing lowercase", "ABCDEF1!", true},
		{"missing digit", "Abcdefg!", true},
		{"missing symbol", "Abcdefg1", true},
		{"disallowed character", "Abcdef1! ", true},
		{"disallowed symbol", "Abcdef1#", true},
		{"empty", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(tc.password)
			if tc.wantErr {
				require.Error(t, err)
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "password", validationErr.Field)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, validateEmail("alice@example.com"))
	require.NoError(t, validateEmail("a.b+c@sub.example.co"))
	require.Error(t, validateEmail("alice"))
	require.Error(t, validateEmail("alice@"))
	require.Error(t, validateEmail("alice@example"))
	require.Error(t, validateEmail("@example.com"))
}

func TestValidateTimeOfDay(t *testing.T) {
	require.NoError(t, validateTimeOfDay("18:30"))
	require.NoError(t, validateTimeOfDay("00:00"))
	require.Error(t, validateTimeOfDay("8:30"))
	require.Error(t, validateTimeOfDay("1830"))
	require.Error(t, validateTimeOfDay("18:30:00"))
	require.Error(t, validateTimeOfDay(""))
}

func TestParseCalendarDate(t *testing.T) {
	d, err := parseCalendarDate("scheduledDate", "2024-01-10")
	require.NoError(t, err)
	require.Equal(t, 2024, d.Year())
	require.Equal(t, 10, d.Day())

	_, err = parseCalendarDate("scheduledDate", "10/01/2024")
	require.Error(t, err)
	_, err = parseCalendarDate("scheduledDate", "not-a-date")
	require.Error(t, err)
}

func TestSanitizeText(t *testing.T) {
	require.Equal(t, "&lt;b&gt;gym&lt;/b&gt;", sanitizeText("  <b>gym</b> "))
	require.Equal(t, "plain", sanitizeText("plain"))
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "a@x.com", normalizeEmail(" A@X.Com "))
}
