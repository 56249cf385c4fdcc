package postgres

import (
	"fmt"

	"github.com/portfolio-backend/portfolio-api/config"
)

// DSN returns DB_DSN when set, otherwise a keyword/value string built from the
// individual settings. Both drivers accept that form.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
}
