package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
	"github.com/custodia-labs/docfind/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyThreshold      = "search.threshold"
	keyMinQueryLength = "search.min_query_length"
	keyLimit          = "search.limit"
	keyAsyncThreshold = "search.async_threshold"
	keyWeightPrefix   = "search.weights."
	keyCorpusPath     = "corpus.path"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Keys missing from the store fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	settings.Search.Threshold = s.getFloat(keyThreshold, settings.Search.Threshold)
	settings.Search.MinQueryLength = s.getInt(keyMinQueryLength, settings.Search.MinQueryLength)
	settings.Search.Limit = s.getInt(keyLimit, settings.Search.Limit)
	settings.AsyncThreshold = s.getInt(keyAsyncThreshold, settings.AsyncThreshold)
	settings.CorpusPath = s.configStore.GetString(keyCorpusPath)

	for _, field := range domain.Fields() {
		key := keyWeightPrefix + field.String()
		settings.Search.Weights[field] = s.getFloat(key, settings.Search.Weights[field])
	}

	if err := settings.Search.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are required", domain.ErrInvalidInput)
	}
	if err := settings.Search.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyThreshold, settings.Search.Threshold},
		{keyMinQueryLength, settings.Search.MinQueryLength},
		{keyLimit, settings.Search.Limit},
		{keyAsyncThreshold, settings.AsyncThreshold},
		{keyCorpusPath, settings.CorpusPath},
	}
	for _, field := range domain.Fields() {
		if w, ok := settings.Search.Weights[field]; ok {
			values = append(values, struct {
				key   string
				value any
			}{keyWeightPrefix + field.String(), w})
		}
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// getFloat returns a float config value or the default.
func (s *SettingsService) getFloat(key string, def float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetFloat(key)
}

// getInt returns an integer config value or the default.
func (s *SettingsService) getInt(key string, def int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetInt(key)
}

// Set parses value for key and persists the updated settings.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	value = strings.TrimSpace(value)

	switch {
	case key == keyThreshold:
		settings.Search.Threshold, err = strconv.ParseFloat(value, 64)
	case key == keyMinQueryLength:
		settings.Search.MinQueryLength, err = strconv.Atoi(value)
	case key == keyLimit:
		settings.Search.Limit, err = strconv.Atoi(value)
	case key == keyAsyncThreshold:
		settings.AsyncThreshold, err = strconv.Atoi(value)
	case key == keyCorpusPath:
		settings.CorpusPath = value
	case strings.HasPrefix(key, keyWeightPrefix):
		var field domain.Field
		field, err = domain.ParseField(strings.TrimPrefix(key, keyWeightPrefix))
		if err != nil {
			return err
		}
		var w float64
		w, err = strconv.ParseFloat(value, 64)
		settings.Search.Weights[field] = w
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}

	return s.Save(settings)
}

// Path returns the config file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// SettingKeys returns every configurable key in display order.
func SettingKeys() []string {
	keys := []string{keyThreshold, keyMinQueryLength, keyLimit, keyAsyncThreshold}
	for _, field := range domain.Fields() {
		keys = append(keys, keyWeightPrefix+field.String())
	}
	return append(keys, keyCorpusPath)
}

// SettingValue formats the value of key in settings the way Set accepts it.
func SettingValue(settings *domain.Settings, key string) (string, error) {
	switch {
	case key == keyThreshold:
		return strconv.FormatFloat(settings.Search.Threshold, 'g', -1, 64), nil
	case key == keyMinQueryLength:
		return strconv.Itoa(settings.Search.MinQueryLength), nil
	case key == keyLimit:
		return strconv.Itoa(settings.Search.Limit), nil
	case key == keyAsyncThreshold:
		return strconv.Itoa(settings.AsyncThreshold), nil
	case key == keyCorpusPath:
		return settings.CorpusPath, nil
	case strings.HasPrefix(key, keyWeightPrefix):
		field, err := domain.ParseField(strings.TrimPrefix(key, keyWeightPrefix))
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(settings.Search.Weights[field], 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}
