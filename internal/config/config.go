// Package config resolves the file locations and runtime settings used by
// the barasa commands. Sources are applied in order, later ones winning:
// built-in defaults, a YAML file, a .env file, the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/neocl/barasa"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvSentiWordNet  = "BARASA_SENTIWORDNET"
	EnvWordNetBahasa = "BARASA_WORDNET_BAHASA"
	EnvOutput        = "BARASA_OUTPUT"
	EnvDatabase      = "BARASA_DB"
	EnvLogFile       = "BARASA_LOG_FILE"
	EnvAddr          = "BARASA_ADDR"
)

type Config struct {
	SentiWordNet  string `yaml:"sentiwordnet"`
	WordNetBahasa string `yaml:"wordnet_bahasa"`
	Barasa        string `yaml:"barasa"`
	// Database is an optional SQLite file the generated records are exported to.
	Database string `yaml:"database"`
	// LogFile, when set, receives a rotated copy of the log output.
	LogFile string `yaml:"log_file"`
	// Addr is the listen address of the lookup server.
	Addr string `yaml:"addr"`
}

func Default() *Config {
	p := barasa.DefaultPaths()
	return &Config{
		SentiWordNet:  p.SentiWordNet,
		WordNetBahasa: p.WordNetBahasa,
		Barasa:        p.Barasa,
		Addr:          ":8080",
	}
}

// Load returns the defaults overlaid with the YAML file at path.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// ApplyEnv overlays values from envFile (if it exists) and then from the
// process environment.
func (c *Config) ApplyEnv(envFile string) error {
	vars := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			vars = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("read %s: %w", envFile, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
	for key, dst := range map[string]*string{
		EnvSentiWordNet:  &c.SentiWordNet,
		EnvWordNetBahasa: &c.WordNetBahasa,
		EnvOutput:        &c.Barasa,
		EnvDatabase:      &c.Database,
		EnvLogFile:       &c.LogFile,
		EnvAddr:          &c.Addr,
	} {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	return nil
}

// Paths returns the generation file locations.
func (c *Config) Paths() barasa.Paths {
	return barasa.Paths{
		SentiWordNet:  c.SentiWordNet,
		WordNetBahasa: c.WordNetBahasa,
		Barasa:        c.Barasa,
	}
}
