package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvPrefix is stripped from environment variables before they are mapped onto
// config keys.
const EnvPrefix = "PUPPER_"

// Load returns the default config, overlaid with the YAML file at path (if path
// is not empty), overlaid with PUPPER_* environment variables, and validated.
//
// Environment variables are lowercased after the prefix is removed. The
// HARDWARE_ section prefix becomes a dotted key, everything else is a
// top-level key:
//
//	PUPPER_MAX_YAW_RATE        -> max_yaw_rate
//	PUPPER_HARDWARE_NATS_URL   -> hardware.nats_url
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}

		if err := k.Load(rawbytes.Provider(b), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "parsing config file %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "loading environment")
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if strings.HasPrefix(key, "hardware_") {
		return "hardware." + strings.TrimPrefix(key, "hardware_")
	}

	return key
}
