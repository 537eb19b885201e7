package config

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noEnvFile points the dotenv source at a file that does not exist so tests
// never pick up a stray .env from the working directory.
func noEnvFile(t *testing.T) []string {
	t.Helper()
	return []string{"-env-file", filepath.Join(t.TempDir(), "absent.env")}
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil, nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder(nil, nil).withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Name: "first"}, Server: Server{Port: 1000}},
		&StructuredConfig{App: App{Name: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.App.Name)
	assert.Equal(t, 1000, cfg.Server.Port)
	assert.Equal(t, DefaultCORSOrigin, cfg.CORS.Origin)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder(nil, nil)
	b.configs = append(b.configs, &StructuredConfig{App: App{Name: "app"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidCORSConfigs)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Defaults(t *testing.T) {
	cfg, err := GetStructuredConfig(noEnvFile(t), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "airtasker", cfg.App.Name)
	assert.Equal(t, "", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, ":8000", cfg.Server.HTTPAddress())
	assert.Equal(t, "localhost", cfg.Server.DisplayHost())
	assert.Equal(t, "", cfg.Server.GRPCAddress)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Equal(t, []string{"stdout"}, cfg.Log.Output)
	assert.Equal(t, "*", cfg.CORS.Origin)
	assert.False(t, cfg.DebugMode)
}

func TestGetStructuredConfig_EnvOverridesDefaults(t *testing.T) {
	environ := []string{
		"APP_NAME=greeter",
		"SERVER_HOST=127.0.0.1",
		"SERVER_PORT=9000",
		"CORS_ORIGIN=https://example.com",
		"LOG_LEVEL=debug",
		"DEBUG_MODE=True",
	}

	cfg, err := GetStructuredConfig(noEnvFile(t), environ, nil)
	require.NoError(t, err)

	assert.Equal(t, "greeter", cfg.App.Name)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress())
	assert.Equal(t, "https://example.com", cfg.CORS.Origin)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.True(t, cfg.DebugMode)
}

func TestGetStructuredConfig_InvalidEnvPortFallsBack(t *testing.T) {
	var buf bytes.Buffer

	cfg, err := GetStructuredConfig(noEnvFile(t), []string{"SERVER_PORT=eighty"}, bufferLogger(&buf))
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Contains(t, buf.String(), "invalid SERVER_PORT")
}

func TestGetStructuredConfig_PortArgument(t *testing.T) {
	args := append(noEnvFile(t), "9100")

	cfg, err := GetStructuredConfig(args, []string{"SERVER_PORT=9000"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
}

func TestGetStructuredConfig_InvalidPortArgument(t *testing.T) {
	tests := []struct {
		name     string
		environ  []string
		arg      string
		wantPort int
	}{
		{name: "non-integer uses default", arg: "abc", wantPort: 8000},
		{name: "non-integer uses configured port", environ: []string{"SERVER_PORT=9000"}, arg: "abc", wantPort: 9000},
		{name: "out of range", arg: "99999", wantPort: 8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			args := append(noEnvFile(t), tt.arg)

			cfg, err := GetStructuredConfig(args, tt.environ, bufferLogger(&buf))
			require.NoError(t, err)

			assert.Equal(t, tt.wantPort, cfg.Server.Port)
			assert.Contains(t, buf.String(), "Invalid port number. Using default port")
			assert.Contains(t, buf.String(), `"level":"warn"`)
		})
	}
}

func TestGetStructuredConfig_DotEnv(t *testing.T) {
	envFile := writeTempFile(t, "test.env", "APP_NAME=from-dotenv\nCORS_ORIGIN=https://dotenv.example\n")

	cfg, err := GetStructuredConfig(
		[]string{"-env-file", envFile},
		[]string{"CORS_ORIGIN=https://process.example"},
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.App.Name)
	assert.Equal(t, "https://process.example", cfg.CORS.Origin, "process environment wins over the dotenv file")
	assert.Equal(t, envFile, cfg.EnvFilePath)
}

func TestGetStructuredConfig_MissingExplicitDotEnvWarns(t *testing.T) {
	var buf bytes.Buffer

	_, err := GetStructuredConfig(noEnvFile(t), nil, bufferLogger(&buf))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "env file not found")
}

func TestGetStructuredConfig_JSONFile(t *testing.T) {
	jsonFile := writeTempFile(t, "config.json", `{
		"app": {"name": "from-json"},
		"server": {"port": 9200, "shutdown_timeout": "1s"},
		"cors": {"origin": "https://json.example"}
	}`)

	args := append(noEnvFile(t), "-c", jsonFile)
	cfg, err := GetStructuredConfig(args, []string{"APP_NAME=from-env"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.Name, "environment wins over json")
	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "https://json.example", cfg.CORS.Origin)
	assert.Equal(t, jsonFile, cfg.JSONFilePath)
}

func TestGetStructuredConfig_JSONFileFromEnv(t *testing.T) {
	jsonFile := writeTempFile(t, "config.json", `{"app": {"name": "env-located"}}`)

	cfg, err := GetStructuredConfig(noEnvFile(t), []string{"CONFIG=" + jsonFile}, nil)
	require.NoError(t, err)
	assert.Equal(t, "env-located", cfg.App.Name)
}

func TestGetStructuredConfig_JSONOutOfRangePortIgnored(t *testing.T) {
	jsonFile := writeTempFile(t, "config.json", `{"server": {"port": 123456}}`)

	args := append(noEnvFile(t), "-c", jsonFile)
	cfg, err := GetStructuredConfig(args, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
}

func TestGetStructuredConfig_Errors(t *testing.T) {
	t.Run("missing json file", func(t *testing.T) {
		args := append(noEnvFile(t), "-c", filepath.Join(t.TempDir(), "missing.json"))
		_, err := GetStructuredConfig(args, nil, nil)
		assert.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := GetStructuredConfig([]string{"-nope"}, nil, nil)
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := GetStructuredConfig(noEnvFile(t), []string{"SERVER_SHUTDOWN_TIMEOUT=later"}, nil)
		assert.Error(t, err)
	})
}

func TestLoggerOptions(t *testing.T) {
	cfg := defaults()
	cfg.DebugMode = true

	opts := cfg.LoggerOptions()
	assert.Equal(t, "INFO", opts.Level)
	assert.True(t, opts.Debug)
	assert.Equal(t, "json", opts.Encoding)
	assert.Equal(t, []string{"stdout"}, opts.Outputs)
}
