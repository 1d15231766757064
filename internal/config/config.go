package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override settings.
// HUFFPACK_LOGGER_LEVEL sets logger.level; a double underscore becomes a
// dash, so HUFFPACK_OUTPUT_RESTORE__SUFFIX sets output.restore-suffix.
const EnvPrefix = "HUFFPACK_"

// EnvConfigFile names the variable holding the default config file path.
const EnvConfigFile = EnvPrefix + "CONFIG"

var defaults = map[string]interface{}{
	"logger.level":          "info",
	"logger.prettier":       true,
	"logger.time-format":    time.RFC3339,
	"output.suffix":         ".huf",
	"output.restore-suffix": ".out",
	"output.overwrite":      false,
	"workers":               0,
	"verify":                false,
}

type Conf struct {
	*koanf.Koanf
}

// Load builds the configuration from the built-in defaults, then the YAML
// file at path if path is not empty, then the environment.
func Load(path string) (*Conf, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	return &Conf{Koanf: k}, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	key = strings.ReplaceAll(key, "__", "-")
	return strings.ReplaceAll(key, "_", ".")
}

func (c *Conf) Bool(path string, defaultValues ...bool) bool {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Bool(path)
}

func (c *Conf) String(path string, defaultValues ...string) string {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.String(path)
}

func (c *Conf) Int(path string, defaultValues ...int) int {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Int(path)
}

func (c *Conf) Copy() *Conf {
	return &Conf{Koanf: c.Koanf.Copy()}
}
