// Package config loads server settings from defaults, an optional YAML file
// and RELCAT_* environment variables, in that order.
package config

import (
	"os"
	"strconv"

	"github.com/go-yaml/yaml"
	"github.com/gobuffalo/envy"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Listen          string `yaml:"listen"`
	FilesDir        string `yaml:"files_dir"`
	Title           string `yaml:"title"`
	LatestByVersion bool   `yaml:"latest_by_version"`
	LogLevel        string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Listen:   ":3000",
		FilesDir: "files",
		Title:    "GOLOS",
		LogLevel: "info",
	}
}

// Load builds the configuration. path may be empty.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return c, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(content, &c); err != nil {
			return c, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := c.FromEnv(); err != nil {
		return c, err
	}
	return c, nil
}

// FromEnv overrides fields with the environment.
func (c *Config) FromEnv() error {
	if port := getenv("PORT", ""); port != "" {
		c.Listen = ":" + port
	}
	c.Listen = getenv("RELCAT_LISTEN", c.Listen)
	c.FilesDir = getenv("RELCAT_FILES_DIR", c.FilesDir)
	c.Title = getenv("RELCAT_TITLE", c.Title)
	c.LogLevel = getenv("RELCAT_LOG_LEVEL", c.LogLevel)

	if v := getenv("RELCAT_LATEST_BY_VERSION", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, "RELCAT_LATEST_BY_VERSION")
		}
		c.LatestByVersion = b
	}
	return nil
}

// getenv treats an empty variable as unset.
func getenv(key, fallback string) string {
	if v := envy.Get(key, ""); v != "" {
		return v
	}
	return fallback
}

func (c Config) Validate() error {
	if c.FilesDir == "" {
		return errors.New("files directory is not set")
	}
	if c.Listen == "" {
		return errors.New("listen address is not set")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}
