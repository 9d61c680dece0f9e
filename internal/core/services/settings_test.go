package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

func TestSettingsService_GetReturnsDefaults(t *testing.T) {
	service := NewSettingsService(newMockConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.True(t, settings.Providers.Google.Enabled)
	assert.True(t, settings.Providers.OpenLibrary.Enabled)
	assert.True(t, settings.Providers.LOC.Enabled)
	assert.Empty(t, settings.Providers.Google.APIKey)
	assert.Equal(t, 365, settings.Releases.WindowPastDays)
	assert.Equal(t, 90, settings.Releases.WindowFutureDays)
	assert.True(t, settings.Cache.Enabled)
	assert.Equal(t, 60, settings.Cache.SearchTTLMinutes)
	assert.Equal(t, 2, settings.Tagging.MinSubjects)
}

func TestSettingsService_GetReadsStoredValues(t *testing.T) {
	store := newMockConfigStore()
	store.values["providers.google.enabled"] = false
	store.values["providers.google.api_key"] = "test-key-123"
	store.values["releases.window_past_days"] = 180
	store.values["tagging.min_subjects"] = 4

	service := NewSettingsService(store)
	settings, err := service.Get()

	require.NoError(t, err)
	assert.False(t, settings.Providers.Google.Enabled)
	assert.Equal(t, "test-key-123", settings.Providers.Google.APIKey)
	assert.Equal(t, 180, settings.Releases.WindowPastDays)
	assert.Equal(t, 4, settings.Tagging.MinSubjects)
	// Keys never written still fall back.
	assert.True(t, settings.Providers.OpenLibrary.Enabled)
	assert.Equal(t, 90, settings.Releases.WindowFutureDays)
}

func TestSettingsService_StoredFalseIsNotDefaulted(t *testing.T) {
	store := newMockConfigStore()
	store.values["providers.loc.enabled"] = false

	service := NewSettingsService(store)
	settings, err := service.Get()

	require.NoError(t, err)
	assert.False(t, settings.Providers.LOC.Enabled)
}

func TestSettingsService_Save(t *testing.T) {
	store := newMockConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Providers.Google.Enabled = false
	settings.Releases.WindowFutureDays = 30

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, false, store.values["providers.google.enabled"])
	assert.Equal(t, 30, store.values["releases.window_future_days"])
	assert.Equal(t, true, store.values["cache.enabled"])
	assert.Equal(t, 2, store.values["tagging.min_subjects"])

	// An empty key is never written, so a stored key survives saves.
	_, exists := store.values["providers.google.api_key"]
	assert.False(t, exists)
}

func TestSettingsService_SaveWithAPIKey(t *testing.T) {
	store := newMockConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Providers.Google.APIKey = "test-key-456"

	require.NoError(t, service.Save(&settings))
	assert.Equal(t, "test-key-456", store.values["providers.google.api_key"])
}

func TestSettingsService_SetGoogleAPIKey(t *testing.T) {
	store := newMockConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetGoogleAPIKey("test-key-789"))
	assert.Equal(t, "test-key-789", store.values["providers.google.api_key"])

	assert.Error(t, service.SetGoogleAPIKey(""))
}

func TestSettingsService_SetProviderEnabled(t *testing.T) {
	store := newMockConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetProviderEnabled(domain.ProvenanceGoogle, false))
	require.NoError(t, service.SetProviderEnabled(domain.ProvenanceOpenLibrary, true))
	require.NoError(t, service.SetProviderEnabled(domain.ProvenanceLOC, false))

	assert.Equal(t, false, store.values["providers.google.enabled"])
	assert.Equal(t, true, store.values["providers.open_library.enabled"])
	assert.Equal(t, false, store.values["providers.loc.enabled"])
}

func TestSettingsService_SetProviderEnabledUnknown(t *testing.T) {
	service := NewSettingsService(newMockConfigStore())

	err := service.SetProviderEnabled(domain.Provenance("worldcat"), true)

	assert.Error(t, err)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(newMockConfigStore())

	defaults := service.GetDefaults()

	assert.Equal(t, domain.DefaultAppSettings(), defaults)
}
