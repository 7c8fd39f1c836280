// Package config loads the settings the ambient service layer needs to
// construct an engine.Book and run the demo HTTP server: nothing in
// here reaches into the engine package's hot path, it only supplies
// the numbers engine.NewBook wants at startup.
package config

// Config is the fully resolved configuration for cmd/clob-server.
// cmd/bench and cmd/replay take command-line flags and do not read it.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Server  ServerConfig  `toml:"server"`
	LogLevel string       `toml:"log_level"`
}

// EngineConfig mirrors the constructor parameters of engine.NewBook.
type EngineConfig struct {
	MaxOrders     uint32 `toml:"max_orders"`
	MinPriceTicks int32  `toml:"min_price_ticks"`
	MaxPriceTicks int32  `toml:"max_price_ticks"`
}

// ServerConfig configures the demo HTTP surface (order submission,
// depth snapshot, and the Prometheus /metrics endpoint).
type ServerConfig struct {
	ListenAddr string `toml:"listen_addr"`
}

// Defaults returns the built-in configuration used when no TOML file
// overrides a field.
func Defaults() Config {
	return Config{
		Engine: EngineConfig{
			MaxOrders:     1_000_000,
			MinPriceTicks: 0,
			MaxPriceTicks: 1_000_000,
		},
		Server: ServerConfig{
			ListenAddr: ":8080",
		},
		LogLevel: "info",
	}
}
