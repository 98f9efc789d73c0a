package config

import (
	"fmt"

	"github.com/heartmarshall/tupa/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if err := c.Decoder.validate(); err != nil {
		return fmt.Errorf("decoder: %w", err)
	}

	return nil
}

func (d *DecoderConfig) validate() error {
	if d.BatchLimit <= 0 {
		return fmt.Errorf("batch_limit must be > 0 (got %d)", d.BatchLimit)
	}
	if d.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", d.Workers)
	}
	if d.VerifyPrintLimit < 0 {
		return fmt.Errorf("verify_print_limit must be >= 0 (got %d)", d.VerifyPrintLimit)
	}

	kinds, err := domain.ParseMarginalKinds(d.MarginalKindsRaw)
	if err != nil {
		return fmt.Errorf("marginal_kinds: %w", err)
	}
	d.MarginalKinds = kinds

	return nil
}
