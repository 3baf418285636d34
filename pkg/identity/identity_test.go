package identity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Max", "max"},
		{"  Max  ", "max"},
		{"Müller", "mueller"},
		{"Ülkü", "uelkue"},
		{"ÖZIL", "oezil"},
		{"Groß", "gross"},
		{"Groß Weiß", "gross.weiss"},
		{"Anna Maria", "anna.maria"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	names := []string{"Max", "Anna Maria", "mustermann", "Jean Paul Pierre", " padded "}

	for _, name := range names {
		once := Normalize(name)
		assert.Equal(t, once, Normalize(once), "Normalize(%q) not idempotent", name)
	}
}

func TestLoginToken(t *testing.T) {
	assert.Equal(t, "max.mustermann", LoginToken("Max", "Mustermann"))
	assert.Equal(t, "gross.weiss.mueller", LoginToken("Groß Weiß", "Müller"))
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		address string
		valid   bool
	}{
		{"a@b.de", true},
		{"max@example.com", true},
		{"max@mylivemail.example", true},
		{"a@outlook.com", false},
		{"a@hotmail.de", false},
		{"a@live.com", false},
		{"a@msn.com", false},
		{"a@passport.net", false},
		{"no-at-sign", false},
		{"@example.com", false},
		{"max@", false},
		{"", false},
	}

	for _, tt := range tests {
		err := ValidateEmail(tt.address)
		if tt.valid {
			assert.NoError(t, err, "ValidateEmail(%q)", tt.address)
		} else {
			assert.Error(t, err, "ValidateEmail(%q)", tt.address)
		}
	}
}

func TestValidateEmail_ErrorType(t *testing.T) {
	err := ValidateEmail("a@outlook.com")
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "a@outlook.com", verr.Address)
}
