package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultFile is used when MKTODO_FILE is unset or blank.
const DefaultFile = "tasks.json"

type Config struct {
	// File is the task file. Its extension picks the storage format:
	// .json (default), .yaml/.yml, .toml, or .db/.sqlite/.sqlite3.
	File string `env:"MKTODO_FILE" env-default:"tasks.json"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	cfg.File = strings.TrimSpace(cfg.File)
	if cfg.File == "" {
		cfg.File = DefaultFile
	}
	return cfg, nil
}
