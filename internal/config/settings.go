package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Settings holds the runtime configuration of a session.
// Values come from an optional YAML file, then environment variables;
// command-line flags are applied on top by the caller.
type Settings struct {
	// DataFile is the snapshot location. Empty means DefaultSnapshotPath.
	DataFile string `yaml:"data_file" env:"ADDRESSBOOK_FILE"`

	// Format forces a snapshot backend. Empty means "infer from extension".
	Format string `yaml:"format" env:"ADDRESSBOOK_FORMAT"`

	// Language selects the UI translation.
	Language string `yaml:"language" env:"ADDRESSBOOK_LANG" env-default:"en"`

	// NoColor disables lipgloss styling of the session output.
	NoColor bool `yaml:"no_color" env:"ADDRESSBOOK_NO_COLOR"`

	// Reminder is an ISO-8601 alarm trigger added to exported calendar events.
	Reminder string `yaml:"reminder" env:"ADDRESSBOOK_REMINDER"`
}

// LoadSettings reads the settings file at path, or only the environment when
// path is empty. A missing file at the default location is not an error.
func LoadSettings(path string) (*Settings, error) {
	var s Settings

	explicit := path != ""
	if !explicit {
		if dir, err := AppConfigDir(); err == nil {
			path = filepath.Join(dir, SettingsFileName)
		}
	}

	switch {
	case path == "":
		if err := cleanenv.ReadEnv(&s); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrSettingsRead, err)
		}
	case !explicit && !fileExists(path):
		if err := cleanenv.ReadEnv(&s); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrSettingsRead, err)
		}
	default:
		if err := cleanenv.ReadConfig(path, &s); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrSettingsRead, err)
		}
	}

	if s.DataFile == "" {
		p, err := DefaultSnapshotPath()
		if err != nil {
			return nil, err
		}
		s.DataFile = p
	}

	slog.Debug(MsgSettingsLoaded,
		LogKeyComponent, CompConfig,
		LogKeyFile, s.DataFile,
		LogKeyFormat, s.Format,
		LogKeyLang, s.Language,
	)
	return &s, nil
}

// AppConfigDir returns the per-user directory holding settings and snapshots.
func AppConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrConfigDir, err)
	}
	return filepath.Join(dir, AppCommand), nil
}

// DefaultSnapshotPath returns the snapshot location used when none is configured.
// The directory is created with restricted permissions.
func DefaultSnapshotPath() (string, error) {
	dir, err := AppConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", ErrCreateDir, err)
	}
	return filepath.Join(dir, SnapshotFileName), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
