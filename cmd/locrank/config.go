package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/locrank"
	lochttp "github.com/fwojciec/locrank/http"
	"gopkg.in/yaml.v3"
)

// DefaultURL is scanned when no URL is given.
const DefaultURL = "https://www.daraz.pk/"

// Config holds the resolved settings for a scan.
type Config struct {
	URL       string        `yaml:"url"`
	Tags      []string      `yaml:"tags"`
	Timeout   time.Duration `yaml:"timeout"`
	Retries   int           `yaml:"retries"`
	UserAgent string        `yaml:"user_agent"`
	ChromeTLS bool          `yaml:"chrome_tls"`
}

// LoadConfigFile reads a YAML configuration file. Unknown keys are rejected.
// Defaults are not applied.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, locrank.Errorf(locrank.EINVALID, "parsing config %s: %v", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if len(c.Tags) == 0 {
		c.Tags = locrank.DefaultTagTypes()
	}
	if c.Timeout <= 0 {
		c.Timeout = lochttp.DefaultFetchTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = lochttp.DefaultUserAgent
	}
}

// Validate returns an error if the config cannot drive a scan.
func (c *Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return locrank.Errorf(locrank.EINVALID, "invalid URL %q: must be an absolute http or https URL", c.URL)
	}
	for _, tag := range c.Tags {
		if strings.TrimSpace(tag) == "" {
			return locrank.Errorf(locrank.EINVALID, "tag type must not be blank")
		}
	}
	if c.Retries < 0 {
		return locrank.Errorf(locrank.EINVALID, "retries must not be negative")
	}
	return nil
}

// Resolve merges flags over the config file over defaults.
func (c *ScanCmd) Resolve() (*Config, error) {
	cfg := &Config{}
	if c.Config != "" {
		file, err := LoadConfigFile(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = file
	}

	if c.URL != "" {
		cfg.URL = c.URL
	}
	if len(c.Tags) > 0 {
		cfg.Tags = c.Tags
	}
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	if c.Retries != 0 {
		cfg.Retries = c.Retries
	}
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	if c.ChromeTLS {
		cfg.ChromeTLS = true
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
