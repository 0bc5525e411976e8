package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// Load applies the first env file found among files (".env" when none are
// given) and then reads App from the environment.
func Load(files ...string) (*App, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	path, err := loadEnvFile(files...)
	if err != nil {
		return nil, err
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	slog.Default().Info("Configuration loaded",
		"env", cfg.Env,
		"env_file", path,
		slog.Group("server", "host", cfg.Server.Host, "port", cfg.Server.Port),
		slog.Group("db", "url", maskValue(cfg.DB.Url), "lock_timeout", cfg.DB.LockTimeout),
		slog.Group("auth",
			"username", cfg.Auth.Username,
			"jwt_expiry", cfg.Auth.Jwt.Expiry,
			"jwt_secret", maskValue(cfg.Auth.Jwt.Secret),
		),
		slog.Group("rate_limit",
			"max_requests", cfg.RateLimit.MaxRequests,
			"window", cfg.RateLimit.Window,
			"redis", maskValue(cfg.Redis.URL),
		),
	)
	return &cfg, nil
}

func maskValue(v string) string {
	switch {
	case v == "":
		return ""
	case len(v) <= 6:
		return "****"
	default:
		return v[:2] + "****" + v[len(v)-4:]
	}
}
