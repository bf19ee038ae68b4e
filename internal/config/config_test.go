package config_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"SnapshotFileName", config.SnapshotFileName},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 10, config.PhoneDigits)
	assert.Equal(t, 7, config.UpcomingWindowDays)
	assert.Equal(t, 2000, config.DefaultLeapYear, "Default leap year must be 2000 for consistency")
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
}

// TestBirthdayLayout_MatchesPattern keeps the regex guard and the time layout in sync.
func TestBirthdayLayout_MatchesPattern(t *testing.T) {
	re := regexp.MustCompile(config.BirthdayPattern)
	formatted := time.Date(1990, time.June, 5, 0, 0, 0, 0, time.UTC).Format(config.BirthdayLayout)

	assert.Equal(t, "05.06.1990", formatted)
	assert.True(t, re.MatchString(formatted))
	assert.False(t, re.MatchString("5.6.1990"), "Day and month must be zero padded")
}

func TestLoadSettings_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := "data_file: /tmp/book.yaml\nformat: yaml\nlanguage: fr\nno_color: true\nreminder: -P1D\n"
	require.NoError(t, os.WriteFile(path, []byte(content), config.FilePermUserRW))

	s, err := config.LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/book.yaml", s.DataFile)
	assert.Equal(t, config.FormatYAML, s.Format)
	assert.Equal(t, "fr", s.Language)
	assert.True(t, s.NoColor)
	assert.Equal(t, "-P1D", s.Reminder)
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: fr\n"), config.FilePermUserRW))
	t.Setenv("ADDRESSBOOK_LANG", "en")
	t.Setenv("ADDRESSBOOK_FILE", filepath.Join(dir, "book.json"))

	s, err := config.LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "en", s.Language)
	assert.Equal(t, filepath.Join(dir, "book.json"), s.DataFile)
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	_, err := config.LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
