package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"CVDScenarios/internal/config"
	"CVDScenarios/internal/logger"
	"CVDScenarios/internal/notifier"
	"CVDScenarios/internal/observability"
	"CVDScenarios/internal/recorder"
	"CVDScenarios/internal/runner"
	"CVDScenarios/internal/viewer"
)

func main() {
	// Bootstrap logger until the configured one is known
	if err := logger.Init("info", "console"); err != nil {
		panic(err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	flag.StringVar(&cfgPath, "config", cfgPath, "path to the YAML config file")
	format := flag.String("format", "", "output format override: text, json or tui")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("config validation", zap.Error(err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Encoding); err != nil {
		logger.Fatal("init logger", zap.Error(err))
	}
	defer logger.Sync()

	epoch, _ := cfg.EpochTime()
	clock := notifier.Clock{Epoch: epoch, Bar: cfg.BarDuration()}

	// Init output
	var out io.Writer = os.Stdout
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			logger.Fatal("create output file", zap.String("path", cfg.Output.Path), zap.Error(err))
		}
		defer f.Close()
		out = f
	}

	var n notifier.Notifier
	switch cfg.Output.Format {
	case config.FormatJSON:
		n = notifier.NewJSONNotifier(out)
	case config.FormatTUI:
		n = viewer.Notifier{Clock: clock}
	default:
		n = notifier.NewTextNotifier(out, clock)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Export.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Export.SQLitePath)
		if err != nil {
			logger.Warn("init sqlite recorder failed, using noop", zap.Error(err))
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := runner.NewRunner(n, rec, observability.NewMetrics(""), cfg.Metrics.TextfilePath)
	if _, err := r.Run(ctx); err != nil {
		logger.Error("run failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
