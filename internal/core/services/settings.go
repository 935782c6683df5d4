package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Settings are stored under the [simulation] table.
const settingsTable = "simulation."

// SettingsService manages the simulation settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the defaults overlaid with every stored value.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if v, ok := s.intValue(domain.SettingUploadDelay); ok {
		settings.UploadDelay = time.Duration(v) * time.Millisecond
	}
	if v, ok := s.intValue(domain.SettingReplyDelay); ok {
		settings.ReplyDelay = time.Duration(v) * time.Millisecond
	}
	if v, ok := s.intValue(domain.SettingNavigateDelay); ok {
		settings.NavigateDelay = time.Duration(v) * time.Millisecond
	}
	if _, ok := s.configStore.Get(settingsTable + domain.SettingAutoNavigate); ok {
		settings.AutoNavigate = s.configStore.GetBool(settingsTable + domain.SettingAutoNavigate)
	}
	if _, ok := s.configStore.Get(settingsTable + domain.SettingConfidence); ok {
		settings.Confidence = s.configStore.GetFloat(settingsTable + domain.SettingConfidence)
	}
	if v, ok := s.intValue(domain.SettingMaxSources); ok {
		settings.MaxSources = v
	}
	if v := s.configStore.GetString(settingsTable + domain.SettingResponder); v != "" {
		settings.Responder = v
	}

	if err := validateSettings(settings); err != nil {
		return domain.DefaultSettings(), fmt.Errorf("settings in %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

func (s *SettingsService) intValue(key string) (int, bool) {
	if _, ok := s.configStore.Get(settingsTable + key); !ok {
		return 0, false
	}
	return s.configStore.GetInt(settingsTable + key), true
}

// Set parses value for key, validates the result and stores it.
func (s *SettingsService) Set(key, value string) error {
	// Start from defaults if the stored file is invalid, so Set can repair it.
	settings, _ := s.Get()

	value = strings.TrimSpace(value)
	var stored any
	switch key {
	case domain.SettingUploadDelay, domain.SettingReplyDelay, domain.SettingNavigateDelay:
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a whole number of milliseconds", domain.ErrInvalidInput, key)
		}
		d := time.Duration(ms) * time.Millisecond
		switch key {
		case domain.SettingUploadDelay:
			settings.UploadDelay = d
		case domain.SettingReplyDelay:
			settings.ReplyDelay = d
		default:
			settings.NavigateDelay = d
		}
		stored = ms
	case domain.SettingAutoNavigate:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		settings.AutoNavigate = b
		stored = b
	case domain.SettingConfidence:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		settings.Confidence = f
		stored = f
	case domain.SettingMaxSources:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a whole number", domain.ErrInvalidInput, key)
		}
		settings.MaxSources = n
		stored = n
	case domain.SettingResponder:
		settings.Responder = value
		stored = value
	default:
		return fmt.Errorf("%w: unknown setting %q (known: %s)",
			domain.ErrInvalidInput, key, strings.Join(s.Keys(), ", "))
	}

	if err := validateSettings(settings); err != nil {
		return err
	}
	return s.configStore.Set(settingsTable+key, stored)
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return domain.SettingKeys()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}
