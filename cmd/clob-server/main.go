// Command clob-server runs a single-instrument order book behind a
// plain JSON HTTP API and a Prometheus /metrics endpoint.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goovo/clob/engine"
	"github.com/goovo/clob/internal/config"
	"github.com/goovo/clob/internal/metrics"
	"github.com/goovo/clob/server"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	ladderCfg := engine.LadderConfig{
		MinPriceTicks: cfg.Engine.MinPriceTicks,
		MaxPriceTicks: cfg.Engine.MaxPriceTicks,
	}
	book := engine.NewBook(cfg.Engine.MaxOrders, ladderCfg)

	reg := prometheus.NewRegistry()
	sink := metrics.NewSink(reg, engine.NoOpSink{})
	book.SetSink(sink)

	srv := server.New(book, log)
	mux := http.NewServeMux()
	srv.Routes(mux)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	log.Info("clob-server listening", "addr", cfg.Server.ListenAddr, "max_orders", cfg.Engine.MaxOrders)
	if err := http.ListenAndServe(cfg.Server.ListenAddr, mux); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
