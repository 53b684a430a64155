package region

import (
	"flag"
	"fmt"
	"math"

	"github.com/grafana/dskit/flagext"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// Config describes the regions an owner creates. Owners typically embed it in
// their own configuration and call Reserve each time they rotate.
type Config struct {
	Capacity  flagext.Bytes `yaml:"capacity"`
	Alignment int           `yaml:"alignment"`
	Backing   string        `yaml:"backing"`
}

// RegisterFlags registers the config with the "region." prefix.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsWithPrefix("region.", f)
}

// RegisterFlagsWithPrefix registers the config and sets defaults.
func (cfg *Config) RegisterFlagsWithPrefix(prefix string, f *flag.FlagSet) {
	_ = cfg.Capacity.Set("1MB")
	f.Var(&cfg.Capacity, prefix+"capacity", "Size of each region.")
	f.IntVar(&cfg.Alignment, prefix+"alignment", 8, "Alignment of every address handed out by a region. Must be a power of two.")
	f.StringVar(&cfg.Backing, prefix+"backing", string(DefaultBacking), fmt.Sprintf("Where regions are reserved from, %q or %q.", BackingMmap, BackingHeap))
}

// Validate reports every problem with the config.
func (cfg *Config) Validate() error {
	var errs error
	if cfg.Capacity == 0 {
		errs = multierr.Append(errs, ErrInvalidCapacity)
	} else if uint64(cfg.Capacity) > math.MaxInt {
		errs = multierr.Append(errs, errors.Errorf("region: capacity %s does not fit in an int", cfg.Capacity.String()))
	}
	if !isPowerOfTwo(cfg.Alignment) {
		errs = multierr.Append(errs, ErrInvalidAlignment)
	}
	switch Backing(cfg.Backing) {
	case BackingMmap, BackingHeap:
	default:
		errs = multierr.Append(errs, errors.Errorf("region: unknown backing %q", cfg.Backing))
	}
	return errs
}

// Reserve validates the config and reserves a region from it. Options given
// here override the configured backing.
func (cfg *Config) Reserve(opts ...Option) (*Region, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts = append([]Option{WithBacking(Backing(cfg.Backing))}, opts...)
	return Reserve(int(cfg.Capacity), cfg.Alignment, opts...)
}

// LoadConfig parses a YAML document over the defaults registered by
// RegisterFlags. Unknown fields are rejected.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	cfg.RegisterFlags(flag.NewFlagSet("region", flag.ContinueOnError))
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "region: parse config")
	}
	return cfg, cfg.Validate()
}
