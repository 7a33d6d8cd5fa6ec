// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that earlier configs take precedence and
// later ones only fill the gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "env"}},
		&StructuredConfig{App: App{Version: "flags", Timezone: "UTC"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "UTC", cfg.App.Timezone)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
}

func TestWithFlags_SetsErrorOnBadArgs(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "nowhere"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

func TestWithDotEnv_LoadsVariables(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_TIMEZONE=Asia/Tokyo\n"), 0o600))
	t.Setenv("APP_TIMEZONE", "")
	require.NoError(t, os.Unsetenv("APP_TIMEZONE"))

	b := newConfigBuilder().withDotEnv(p).withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "Asia/Tokyo", b.configs[0].App.Timezone)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "from-json"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[1].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesHighestPriorityPath verifies that the env path beats the
// flag path.
func TestWithJSON_UsesHighestPriorityPath(t *testing.T) {
	envPath := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "env-json"}})
	flagPath := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "flag-json"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: envPath},
		&StructuredConfig{JSONFilePath: flagPath},
	)
	b.withJSON()

	require.Len(t, b.configs, 3)
	assert.Equal(t, "env-json", b.configs[2].App.Version)
}

func TestWithDefaults_FillsGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{LLM: LLM{Model: "custom"}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.LLM.Model)
	assert.Equal(t, 1000, cfg.LLM.MaxTokens)
	assert.Equal(t, ImageHostInline, cfg.ImageHost.Provider)
	assert.Equal(t, "plant_photos", cfg.ImageHost.Folder)
	assert.Equal(t, AuthModeProvider, cfg.App.AuthMode)
}

func TestNewClientConfig(t *testing.T) {
	cfg := defaults()
	cfg.Adapter.AccessToken = "token"
	cfg.AuthProvider.Email = "me@example.com"

	clientCfg := newClientConfig(cfg)

	assert.Equal(t, "http://localhost:8080", clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, "token", clientCfg.Adapter.AccessToken)
	assert.Equal(t, "me@example.com", clientCfg.Auth.Email)
	assert.Equal(t, cfg.Storage.Local.DSN, clientCfg.Storage.DB.DSN)
	assert.NoError(t, clientCfg.validate())
}
