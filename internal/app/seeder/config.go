package seeder

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/tupa/internal/config"
)

// Config holds seeder pipeline settings.
type Config struct {
	CorpusPath string `yaml:"corpus_path" env:"SEEDER_CORPUS_PATH"`
	SourceSlug string `yaml:"source_slug" env:"SEEDER_SOURCE_SLUG" env-default:"tshet"`
	BatchSize  int    `yaml:"batch_size"  env:"SEEDER_BATCH_SIZE"  env-default:"500"`
	PrintLimit int    `yaml:"print_limit" env:"SEEDER_PRINT_LIMIT" env-default:"30"`

	// AllowMismatches stores the corpus even when the verify phase found
	// spellings that do not decode to their description.
	AllowMismatches bool `yaml:"allow_mismatches" env:"SEEDER_ALLOW_MISMATCHES"`
	DryRun          bool `yaml:"dry_run"          env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). An explicit path
// must exist; an empty path reads ENV only.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if err := config.Read(path, "", &cfg); err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}
	if strings.TrimSpace(cfg.SourceSlug) == "" {
		return nil, fmt.Errorf("seeder config: source_slug is required")
	}

	return &cfg, nil
}
