package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// DefaultFile is read from the working directory when AULA_CONFIG is unset.
const DefaultFile = "aula.yaml"

// Config holds the run settings. Precedence: defaults, then the YAML file,
// then AULA_* environment variables, then command-line flags.
type Config struct {
	Store                  string `yaml:"store"`
	RecordPath             string `yaml:"record_path"`
	DBPath                 string `yaml:"db_path"`
	CrossCategoryConflicts bool   `yaml:"cross_category_conflicts"`
	LogEvents              bool   `yaml:"log_events"`
	Currency               string `yaml:"currency"`
}

func Default() Config {
	return Config{
		Store:      StoreJSON,
		RecordPath: "professor_dados.json",
		DBPath:     "aula.db",
		Currency:   "R$",
	}
}

// Load reads the optional YAML file at path and applies environment
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by AULA_CONFIG, or DefaultFile.
func LoadFromEnv() (Config, error) {
	path := os.Getenv("AULA_CONFIG")
	if path == "" {
		path = DefaultFile
	}
	return Load(path)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("AULA_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("AULA_RECORD"); v != "" {
		cfg.RecordPath = v
	}
	if v := os.Getenv("AULA_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("AULA_CROSS_CATEGORY"); v != "" {
		cfg.CrossCategoryConflicts, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("AULA_LOG_EVENTS"); v != "" {
		cfg.LogEvents, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("AULA_CURRENCY"); v != "" {
		cfg.Currency = v
	}
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreJSON:
		if c.RecordPath == "" {
			return fmt.Errorf("record path is required for the %s store", StoreJSON)
		}
	case StoreSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("db path is required for the %s store", StoreSQLite)
		}
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreJSON, StoreSQLite)
	}
	return nil
}
