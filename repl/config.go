package repl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Engine names.
const (
	EnginePratt   = "pratt"
	EngineDescent = "descent"
	EngineShunt   = "shunt"
	EngineAll     = "all"
)

// ValidEngines lists the allowed engine values.
var ValidEngines = map[string]bool{
	EnginePratt:   true,
	EngineDescent: true,
	EngineShunt:   true,
	EngineAll:     true,
}

// Config controls which engine runs and how results are reported.
type Config struct {
	Engine   string `toml:"engine"`
	Trace    bool   `toml:"trace"`     // Log descent grammar rules at debug level.
	LogLevel string `toml:"log_level"` // Parsed by the caller with zerolog.ParseLevel.
	Prompt   string `toml:"prompt"`    // Empty for no prompt.
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Engine:   EnginePratt,
		LogLevel: "info",
		Prompt:   "> ",
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Unknown keys are an
// error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("load config %q: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is well-formed.
func (c Config) Validate() error {
	if !ValidEngines[c.Engine] {
		return fmt.Errorf("invalid engine %q", c.Engine)
	}
	return nil
}

// Level returns the zerolog level named by LogLevel. An unknown or empty name
// returns zerolog.InfoLevel and an error naming it.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

// engines expands the configured engine into the engines to run, in order.
func (c Config) engines() []string {
	if c.Engine == EngineAll {
		return []string{EnginePratt, EngineDescent, EngineShunt}
	}
	return []string{c.Engine}
}
