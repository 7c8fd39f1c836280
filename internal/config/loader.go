package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of
// the built-in defaults, applies CLOB_* environment variable
// overrides, and returns the final Config. A missing path is not an
// error — the defaults (plus any env overrides) are used as-is, which
// lets cmd/clob-server run with zero setup.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known CLOB_* environment variables and
// overwrites the corresponding Config fields when a variable is set,
// letting operators inject overrides at deploy time without touching
// the TOML file.
func applyEnvOverrides(cfg *Config) {
	setUint32(&cfg.Engine.MaxOrders, "CLOB_ENGINE_MAX_ORDERS")
	setInt32(&cfg.Engine.MinPriceTicks, "CLOB_ENGINE_MIN_PRICE_TICKS")
	setInt32(&cfg.Engine.MaxPriceTicks, "CLOB_ENGINE_MAX_PRICE_TICKS")

	setStr(&cfg.Server.ListenAddr, "CLOB_SERVER_LISTEN_ADDR")

	setStr(&cfg.LogLevel, "CLOB_LOG_LEVEL")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setUint32(dst *uint32, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			*dst = uint32(n)
		}
	}
}

func setInt32(dst *int32, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			*dst = int32(n)
		}
	}
}
