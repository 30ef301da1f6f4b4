package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driving"
	"github.com/custodia-labs/snippets-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyBackend  = "database.backend"
	KeyDBName   = "database.dbname"
	KeyUser     = "database.user"
	KeyHost     = "database.host"
	KeyPort     = "database.port"
	KeyPassword = "database.password"
	KeyPath     = "database.path"
	KeyLogFile  = "log.file"
	KeyLogLevel = "log.level"
)

// knownKeys lists every key in display order.
var knownKeys = []string{
	KeyBackend, KeyDBName, KeyUser, KeyHost, KeyPort, KeyPassword, KeyPath,
	KeyLogFile, KeyLogLevel,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	backend := domain.Backend(s.getString(KeyBackend, defaults.Database.Backend.String()))
	if !backend.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, backend)
	}

	settings := &domain.AppSettings{
		Database: domain.DatabaseSettings{
			Backend:  backend,
			Name:     s.getString(KeyDBName, defaults.Database.Name),
			User:     s.getString(KeyUser, defaults.Database.User),
			Host:     s.getString(KeyHost, defaults.Database.Host),
			Port:     s.getInt(KeyPort, defaults.Database.Port),
			Password: s.configStore.GetString(KeyPassword), // No default - empty defers to the driver
			Path:     s.configStore.GetString(KeyPath),
		},
		Log: domain.LogSettings{
			File:  s.configStore.GetString(KeyLogFile),
			Level: s.getString(KeyLogLevel, defaults.Log.Level),
		},
	}

	return settings, nil
}

// Set validates and stores a single key.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case KeyBackend:
		if !domain.Backend(value).IsValid() {
			return fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, value)
		}
	case KeyPort:
		port, err := strconv.Atoi(value)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("%w: port must be between 1 and 65535, got %q", domain.ErrInvalidInput, value)
		}
		if err := s.configStore.Set(key, port); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
		return nil
	case KeyLogLevel:
		if _, err := logger.ParseLevel(value); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
	case KeyDBName, KeyUser, KeyHost, KeyPassword, KeyPath, KeyLogFile:
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Entries returns every known key with its effective value.
// The password is masked.
func (s *SettingsService) Entries() ([]driving.SettingEntry, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	password := ""
	if settings.Database.Password != "" {
		password = "********"
	}

	values := map[string]string{
		KeyBackend:  settings.Database.Backend.String(),
		KeyDBName:   settings.Database.Name,
		KeyUser:     settings.Database.User,
		KeyHost:     settings.Database.Host,
		KeyPort:     strconv.Itoa(settings.Database.Port),
		KeyPassword: password,
		KeyPath:     settings.Database.Path,
		KeyLogFile:  settings.Log.File,
		KeyLogLevel: settings.Log.Level,
	}

	entries := make([]driving.SettingEntry, 0, len(knownKeys))
	for _, k := range knownKeys {
		entries = append(entries, driving.SettingEntry{Key: k, Value: values[k]})
	}
	return entries, nil
}

// Path returns where settings are persisted.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// getString returns the stored string or def when unset or empty.
func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}

// getInt returns the stored integer or def when unset or zero.
func (s *SettingsService) getInt(key string, def int) int {
	if v := s.configStore.GetInt(key); v != 0 {
		return v
	}
	return def
}
