// weathercard — Render a two-city weather card PNG from a CI dispatch
// event payload.
//
// Usage:
//
//	weathercard [-event <path>] [-assets <dir>] [-out <dir>]
//
// Flags override the corresponding environment variables. The only
// fatal condition is a missing background panel asset; every payload
// problem degrades to a placeholder card.
package main

import (
	"flag"
	"fmt"
	"os"
	_ "time/tzdata"

	"go.uber.org/zap"

	"github.com/overcastlab/weathercard/pkg/assets"
	"github.com/overcastlab/weathercard/pkg/card"
	"github.com/overcastlab/weathercard/pkg/config"
	"github.com/overcastlab/weathercard/pkg/payload"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, os.Args[1:]); err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger, args []string) error {
	cfg, warnings := config.Load()
	logWarnings(logger, "config", warnings)

	fs := flag.NewFlagSet("weathercard", flag.ExitOnError)
	fs.StringVar(&cfg.EventPath, "event", cfg.EventPath, "Path to the dispatch event JSON")
	fs.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "Asset directory (panel, icons, fonts)")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Output directory for the rendered PNG")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, warnings := payload.Load(cfg.EventPath)
	logWarnings(logger, "payload", warnings)
	logWarnings(logger, "payload", payload.Warnings(p))

	lib, warnings, err := assets.Open(cfg.AssetsDir)
	logWarnings(logger, "assets", warnings)
	if err != nil {
		// The one hard failure: no canvas background, no card.
		return fmt.Errorf("open assets: %w", err)
	}

	renderer := card.NewRenderer(lib, card.NewFrostedStyle(cfg.Supersample), card.Options{
		Supersample:      cfg.Supersample,
		BackgroundPolicy: cfg.BackgroundPolicy,
		ParticleSeed:     cfg.ParticleSeed,
	})
	img := renderer.Render(p)

	path, err := card.NewWriter(cfg.OutputDir).Save(img, p.JobName())
	if err != nil {
		return err
	}

	logger.Info("saved", zap.String("path", path), zap.String("job_id", p.JobName()))
	return nil
}

func logWarnings(logger *zap.Logger, stage string, warnings []string) {
	for _, w := range warnings {
		logger.Warn(w, zap.String("stage", stage))
	}
}
