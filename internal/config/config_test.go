package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEnv_MissingFileIsNotAnError(t *testing.T) {
	err := loadEnv(".env.does-not-exist")
	if err != nil {
		t.Fatalf(`loadEnv(".env.does-not-exist") returned error: %v`, err)
	}
}

func TestGetEnv_KeyValue(t *testing.T) {
	t.Setenv("xyz", "abc")

	result := getEnv("xyz", "development")

	expected := "abc"

	if result != expected {
		t.Errorf(`getEnv("xyz", "development") = %q; expected: %q`, result, expected)
	}
}

func TestGetEnv_FallbackValue(t *testing.T) {
	// set test env var to empty to trigger fallback
	t.Setenv("xyz", "")

	result := getEnv("xyz", "development")

	expected := "development"

	if result != expected {
		t.Errorf(`getEnv("xyz", "development") = %q; expected: %q`, result, expected)
	}
}

func TestDefaults(t *testing.T) {
	// AppConfig was parsed at init; the deployment constants must hold even
	// with an empty environment.
	require.Equal(t, "neuland-ingolstadt.de", AppConfig.Mail.Domain)
	require.Equal(t, "Willkommen bei Neuland Ingolstadt", AppConfig.Mail.Subject)
	require.NotZero(t, AppConfig.LDAP.Timeout)
	require.NotZero(t, AppConfig.SMTP.Timeout)
}
