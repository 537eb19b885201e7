package config

import (
	"errors"
	"fmt"
	"io/fs"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-greeter/internal/logger"
	"github.com/joho/godotenv"
)

type configBuilder struct {
	configs []*StructuredConfig
	environ map[string]string
	flags   Flags
	log     *logger.Logger
	err     error

	// invalidPortArg keeps a rejected positional port so that build can
	// report the port actually used.
	invalidPortArg string
}

func newConfigBuilder(environ []string, log *logger.Logger) *configBuilder {
	if log == nil {
		log = logger.Nop()
	}

	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
		environ: environMap(environ),
		log:     log,
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if b.invalidPortArg != "" {
		b.log.Warn().
			Str("port", b.invalidPortArg).
			Msgf("Invalid port number. Using default port %d.", config.Server.Port)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	if len(flags.Extra) > 0 {
		b.log.Warn().Strs("args", flags.Extra).Msg("ignoring extra positional arguments")
	}

	b.flags = flags
	return b
}

func (b *configBuilder) withDotEnv() *configBuilder {
	path := b.flags.EnvFilePath
	if path == "" {
		path = DefaultEnvFilePath
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if b.flags.EnvFilePath != "" {
				b.log.Warn().Str("path", path).Msg("env file not found")
			}
			return b
		}
		b.err = errors.Join(b.err, fmt.Errorf("error reading env file: %w", err))
		return b
	}

	// process environment wins over the file
	for key, value := range values {
		if _, ok := b.environ[key]; !ok {
			b.environ[key] = value
		}
	}

	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := b.flags.JSONFilePath
	if jsonPath == "" {
		jsonPath = b.environ["CONFIG"]
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	if jsonCfg.Server.Port != 0 && !validPort(jsonCfg.Server.Port) {
		b.log.Warn().Int("port", jsonCfg.Server.Port).Msg("ignoring out of range port from json config")
		jsonCfg.Server.Port = 0
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	sanitizeEnv(b.environ, b.log)

	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, b.environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withArgs() *configBuilder {
	argsCfg := &StructuredConfig{
		JSONFilePath: b.flags.JSONFilePath,
		EnvFilePath:  b.flags.EnvFilePath,
	}

	if b.flags.Port != "" {
		port, err := parsePort(b.flags.Port)
		if err != nil {
			b.invalidPortArg = b.flags.Port
		} else {
			argsCfg.Server.Port = port
		}
	}

	b.configs = append(b.configs, argsCfg)
	return b
}
