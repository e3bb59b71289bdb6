package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

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

func minimalConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/cars"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder with nothing collected
// fails validation on the missing sign key.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrEmptyTokenSignKey)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies the values filled in for unset fields.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenLifetime())
	assert.Equal(t, DefaultPasswordHashCost, cfg.App.PasswordHashCost)
	assert.Equal(t, DefaultMaxOpenConns, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, DefaultMaxIdleConns, cfg.Storage.DB.MaxIdleConns)
	assert.Equal(t, "-08:00", cfg.Storage.DB.TimeZone)
}

// TestBuild_LegacyVariables verifies that JWT_KEY and PORT fill the
// structured fields when those are unset.
func TestBuild_LegacyVariables(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JWTKey:  "legacy",
		Port:    "8081",
		Storage: Storage{DB: DB{DSN: "postgres://localhost/cars"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.App.TokenSignKey)
	assert.Equal(t, ":8081", cfg.Server.HTTPAddress)
}

// TestBuild_StructuredFieldsBeatLegacy verifies that the structured fields
// win over JWT_KEY and PORT.
func TestBuild_StructuredFieldsBeatLegacy(t *testing.T) {
	base := minimalConfig()
	base.JWTKey = "legacy"
	base.Port = "8081"
	base.Server.HTTPAddress = "127.0.0.1:9000"

	b := newConfigBuilder()
	b.configs = append(b.configs, base)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged and that the earlier config wins on conflicts.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	first := minimalConfig()
	first.App.Version = "1.0.0"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		first,
		&StructuredConfig{App: App{TokenIssuer: "issuer", Version: "ignored"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// TestBuild_Validation verifies every rejected configuration.
func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrEmptyTokenSignKey,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrEmptyDSN,
		},
		{
			name:    "negative pool size",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.MaxOpenConns = -1 },
			wantErr: ErrInvalidPoolSize,
		},
		{
			name:    "negative token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = new(-time.Minute) },
			wantErr: ErrInvalidTokenDuration,
		},
		{
			name:    "named time zone",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.TimeZone = "America/Los_Angeles" },
			wantErr: ErrInvalidTimeZone,
		},
		{
			name:    "injected time zone",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.TimeZone = "-08:00'; DROP TABLE car; --" },
			wantErr: ErrInvalidTimeZone,
		},
		{
			name:    "offset without sign",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.TimeZone = "08:00" },
			wantErr: ErrInvalidTimeZone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := minimalConfig()
			tt.mutate(base)

			b := newConfigBuilder()
			b.configs = append(b.configs, base)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_MissingFileIsIgnored verifies that an absent .env file is
// not an error.
func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withDotEnv(filepath.Join(t.TempDir(), ".env")))
	assert.NoError(t, b.err)
}

// TestWithDotEnv_LoadsIntoEnvironment verifies that .env values become
// visible to withEnv without overriding variables already set.
func TestWithDotEnv_LoadsIntoEnvironment(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_TOKEN_ISSUER", "from-process")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_KEY=from-dotenv\nAPP_TOKEN_ISSUER=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("JWT_KEY") })

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].JWTKey)
	assert.Equal(t, "from-process", b.configs[0].App.TokenIssuer)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a malformed variable is
// recorded instead of appended.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("APP_PASSWORD_HASH_COST", "high")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Len(t, b.configs, 1)
}

// TestWithFlags_SetsErrorOnBadFlag verifies that flag parse errors are kept.
func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "nowhere"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the path from the
// higher-priority source is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "from-flag-path"
	second := StructuredJSONConfig{}
	second.App.Version = "from-env-path"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "from-flag-path", b.configs[2].App.Version)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestBuilder_Precedence verifies flags > env > json for the same field.
func TestBuilder_Precedence(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "json-issuer"
	payload.App.Version = "json-version"
	payload.App.TokenSignKey = "json-key"
	payload.Storage.DB.DSN = "postgres://json/cars"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("CONFIG", path)
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")

	cfg, err := newConfigBuilder().
		withFlags([]string{"-token-sign-key", "flag-key"}).
		withEnv().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "json-version", cfg.App.Version)
	assert.Equal(t, "postgres://json/cars", cfg.Storage.DB.DSN)
}

// TestBuild_TokenDuration verifies that an unset token duration falls back to
// the default while an explicit zero survives later sources.
func TestBuild_TokenDuration(t *testing.T) {
	tests := []struct {
		name    string
		sources []*time.Duration
		want    time.Duration
	}{
		{name: "unset uses default", sources: []*time.Duration{nil}, want: DefaultTokenDuration},
		{name: "explicit zero", sources: []*time.Duration{new(time.Duration(0))}, want: 0},
		{name: "explicit zero wins over later source", sources: []*time.Duration{new(time.Duration(0)), new(time.Hour)}, want: 0},
		{name: "unset first source takes later one", sources: []*time.Duration{nil, new(time.Hour)}, want: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			for _, d := range tt.sources {
				src := minimalConfig()
				src.App.TokenDuration = d
				b.configs = append(b.configs, src)
			}

			cfg, err := b.build()
			require.NoError(t, err)
			require.NotNil(t, cfg.App.TokenDuration)
			assert.Equal(t, tt.want, cfg.App.TokenLifetime())
		})
	}
}

// TestBuilder_ZeroTokenDurationFromEnv verifies that APP_TOKEN_DURATION=0s
// disables expiry instead of being replaced by the default.
func TestBuilder_ZeroTokenDurationFromEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/cars")
	t.Setenv("APP_TOKEN_DURATION", "0s")

	cfg, err := newConfigBuilder().withEnv().build()

	require.NoError(t, err)
	require.NotNil(t, cfg.App.TokenDuration)
	assert.Zero(t, cfg.App.TokenLifetime())
}
