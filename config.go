package adptarray

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/a-peyrard/adptarray/config"
	"github.com/a-peyrard/adptarray/option"
	"github.com/rs/zerolog"
)

// DefaultEnvPrefix prefixes the environment variables read by LoadConfig.
const DefaultEnvPrefix = "ADPTARRAY"

// Config is the environment-facing counterpart of Options.
//
//	ADPTARRAY_GROW_POLICY  copy | move
//	ADPTARRAY_MAX_SLOTS    0 means unbounded
//	ADPTARRAY_LOG_LEVEL    zerolog level name
type Config struct {
	GrowPolicy string
	MaxSlots   int
	LogLevel   string
}

func (c *Config) ApplyDefault() {
	if c.GrowPolicy == "" {
		c.GrowPolicy = CopyOnGrow.String()
	}
	if c.LogLevel == "" {
		c.LogLevel = zerolog.WarnLevel.String()
	}
}

// LoadConfig reads a Config from the environment. An empty prefix means DefaultEnvPrefix.
func LoadConfig(prefix string) (*Config, error) {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	conf, err := config.Load[Config](config.WithEnvPrefix(prefix))
	if err != nil {
		return nil, fmt.Errorf("unable to load adaptive array config: %w", err)
	}
	return conf, nil
}

// Options validates the config and turns it into array options. Every array built with
// the returned options shares the same allocator, so MaxSlots bounds them all together.
func (c *Config) Options() ([]option.Option[Options], error) {
	policy, err := ParseGrowPolicy(c.GrowPolicy)
	if err != nil {
		return nil, err
	}
	if c.MaxSlots < 0 {
		return nil, fmt.Errorf("max slots must be positive, got %d", c.MaxSlots)
	}
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", c.LogLevel, err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()

	opts := []option.Option[Options]{
		WithGrowPolicy(policy),
		WithLogger(&logger),
	}
	if c.MaxSlots > 0 {
		opts = append(opts, WithAllocator(Limit(c.MaxSlots)))
	}
	return opts, nil
}
