package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/lemonade-stand/internal/game"
	"gopkg.in/yaml.v3"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// StorageConfig selects the save repository.
type StorageConfig struct {
	Dialect     string `yaml:"dialect" json:"dialect"`
	SQLitePath  string `yaml:"sqlite_path" json:"sqlite_path"`
	PostgresDSN string `yaml:"postgres_dsn" json:"postgres_dsn"`
}

// Config is the full runtime configuration of the stand.
type Config struct {
	Seed    int64         `yaml:"seed" json:"seed"`
	Balance game.Balance  `yaml:"balance" json:"balance"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
}

func Default() Config {
	return Config{
		Balance: game.DefaultBalance(),
		Storage: StorageConfig{
			Dialect:    DialectSQLite,
			SQLitePath: filepath.Join("tmp", "lemonade_stand.sqlite"),
		},
	}
}

func (s *StorageConfig) ApplyDefaults() {
	s.Dialect = strings.TrimSpace(strings.ToLower(s.Dialect))
	if s.Dialect == "" {
		s.Dialect = DialectSQLite
	}
	if s.Dialect == DialectSQLite && strings.TrimSpace(s.SQLitePath) == "" {
		s.SQLitePath = filepath.Join("tmp", "lemonade_stand.sqlite")
	}
}

// ApplyEnv lets the environment override storage settings.
func (s *StorageConfig) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("DB_DIALECT")); v != "" {
		s.Dialect = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("DB_SQLITE_PATH")); v != "" {
		s.SQLitePath = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_POSTGRES_DSN")); v != "" {
		s.PostgresDSN = v
	} else if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		s.PostgresDSN = v
	}
}

func (s StorageConfig) Validate() error {
	switch s.Dialect {
	case DialectSQLite:
		if s.SQLitePath == "" {
			return errors.New("sqlite storage requires a path")
		}
	case DialectPostgres:
		if s.PostgresDSN == "" {
			return errors.New("postgres storage requires DB_POSTGRES_DSN or DATABASE_URL")
		}
	default:
		return fmt.Errorf("unsupported storage dialect %q", s.Dialect)
	}
	return nil
}

func (c Config) RunConfig() game.RunConfig {
	return game.RunConfig{Seed: c.Seed, Balance: c.Balance}
}

func (c Config) Validate() error {
	if err := c.Balance.Validate(); err != nil {
		return fmt.Errorf("balance: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	return nil
}

// Load reads path on top of Default. An empty or missing path yields the
// defaults. Storage environment variables are applied last.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}
	cfg.Storage.ApplyEnv()
	cfg.Storage.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
