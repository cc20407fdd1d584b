// Package config resolves orgchart settings.
//
// Settings are layered, later sources winning:
//
//  1. built-in defaults ([Default])
//  2. orgchart.toml in the working directory, or the file given with --config
//  3. environment variables (ORGCHART_*), after loading a .env file if present
//  4. command-line flags, applied by the CLI on top of the loaded Config
//
// A minimal orgchart.toml:
//
//	roster = "roster.yaml"
//
//	[output]
//	format = "png"
//
//	[incident]
//	name = "FLOCOM"
//	dr_number = "220-25"
//	operational_period = "18:00 20/10/2024 to 17:59 21/10/2024"
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	errs "github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/orgchart"
	"github.com/matzehuels/orgchart/pkg/render"
	"github.com/matzehuels/orgchart/pkg/roster"
	"github.com/matzehuels/orgchart/pkg/webpage"
)

const (
	// DefaultPath is the config file picked up from the working directory.
	DefaultPath = "orgchart.toml"

	// DefaultEnvFile is loaded into the process environment before env
	// overrides are read. Variables already set are not replaced.
	DefaultEnvFile = ".env"

	DefaultBaseName = "org_chart"
	DefaultFormat   = render.FormatPDF
	DefaultCacheTTL = 7 * 24 * time.Hour
)

// Config is the fully resolved configuration for one run.
type Config struct {
	Roster      string            `toml:"roster"`
	EmailDomain string            `toml:"email_domain"`
	Output      OutputConfig      `toml:"output"`
	Incident    orgchart.Incident `toml:"incident"`
	Cache       CacheConfig       `toml:"cache"`
}

// OutputConfig controls where artifacts go and how they are named.
type OutputConfig struct {
	Dir    string `toml:"dir"`
	Name   string `toml:"name"`   // base filename shared by all artifacts
	Format string `toml:"format"` // primary format; SVG is always produced too
	Title  string `toml:"title"`  // HTML page title
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Disabled bool   `toml:"disabled"`
	Dir      string `toml:"dir"`       // empty means the XDG cache dir
	RedisURL string `toml:"redis_url"` // non-empty selects Redis over files
	TTL      string `toml:"ttl"`       // Go duration string, e.g. "168h"
}

// Default returns the configuration used when nothing is configured.
func Default() Config {
	return Config{
		Roster:      roster.DefaultPath,
		EmailDomain: orgchart.DefaultEmailDomain,
		Output: OutputConfig{
			Dir:    ".",
			Name:   DefaultBaseName,
			Format: DefaultFormat,
			Title:  webpage.DefaultTitle,
		},
		Incident: orgchart.DefaultIncident(),
		Cache: CacheConfig{
			TTL: DefaultCacheTTL.String(),
		},
	}
}

// Load resolves defaults, the config file at path and the environment.
//
// A missing file is only an error when path is not [DefaultPath]: asking for
// a specific file that does not exist is a mistake, while the default file
// is optional.
func Load(path string) (Config, error) {
	return load(path, DefaultEnvFile)
}

func load(path, envFile string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || path != DefaultPath {
			return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
		}
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", envFile)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Roster, "ORGCHART_ROSTER")
	setString(&c.Output.Format, "ORGCHART_FORMAT")
	setString(&c.Output.Dir, "ORGCHART_OUTPUT_DIR")
	setString(&c.Output.Name, "ORGCHART_NAME")
	setString(&c.Cache.Dir, "ORGCHART_CACHE_DIR")
	setString(&c.Cache.RedisURL, "ORGCHART_REDIS_URL")
	setString(&c.Cache.TTL, "ORGCHART_CACHE_TTL")

	if v := os.Getenv("ORGCHART_NO_CACHE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "ORGCHART_NO_CACHE")
		}
		c.Cache.Disabled = b
	}
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// Validate checks values that would otherwise fail late in the pipeline.
func (c Config) Validate() error {
	if err := render.ValidateFormat(c.Output.Format); err != nil {
		return err
	}
	if strings.TrimSpace(c.Output.Name) == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "output name must not be empty")
	}
	if strings.ContainsAny(c.Output.Name, `/\`) {
		return errs.New(errs.ErrCodeInvalidConfig, "output name %q must be a bare filename", c.Output.Name)
	}
	if _, err := c.Cache.TTLDuration(); err != nil {
		return err
	}
	return nil
}

// TTLDuration parses TTL. An empty TTL means entries never expire.
func (c CacheConfig) TTLDuration() (time.Duration, error) {
	if c.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil || d < 0 {
		return 0, errs.New(errs.ErrCodeInvalidConfig, "invalid cache ttl %q", c.TTL)
	}
	return d, nil
}
