package main

import (
	"context"
	"flag"
	"os"

	"github.com/purnamedha/riskscan/internal/app"
	"github.com/purnamedha/riskscan/internal/config"
	"github.com/purnamedha/riskscan/internal/logger"
)

func main() {
	days := flag.Int("days", 0, "look-back window in days (default from SCAN_DAYS or 7, max 90)")
	format := flag.String("format", "markdown", "output format: markdown, json, html or text")
	output := flag.String("output", "", "output file path (default: stdout)")
	serve := flag.Bool("serve", false, "run the HTTP server instead of a one-shot scan")
	addr := flag.String("addr", "", "listen address for serve mode (default from LISTEN_ADDR or :8080)")
	flag.Parse()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}
	if *days > 0 {
		cfg.Days = *days
		if cfg.Days > config.MaxDays {
			cfg.Days = config.MaxDays
		}
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	application, err := app.New(cfg)
	if err != nil {
		logger.Error("startup", "error", err)
		os.Exit(1)
	}

	if *serve {
		if err := application.Serve(); err != nil {
			logger.Error("server", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := application.RunOnce(context.Background(), cfg.Days, *format, *output); err != nil {
		logger.Error("scan", "error", err)
		os.Exit(1)
	}
}
