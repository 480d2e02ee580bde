package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds catalog seeding settings.
type Config struct {
	CatalogPath string `yaml:"catalog_path" env:"SEEDER_CATALOG_PATH" env-default:"data/bahrs.yaml"`
	DryRun      bool   `yaml:"dry_run"      env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder settings from an optional YAML file and the
// environment. Priority: ENV > YAML > env-default tags. A path that does
// not exist is an error.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
	}
	return &cfg, nil
}
