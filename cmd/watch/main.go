// Watch mode: monitor a drop directory and write an analysis artifact next
// to each transcript that lands in it.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/talkvault/meetgest/internal/analyze"
	"github.com/talkvault/meetgest/internal/lang"
	"github.com/talkvault/meetgest/internal/parser"
	"github.com/talkvault/meetgest/internal/watcher"
)

func main() {
	configPath := flag.String("config", "watch.yaml", "path to watch-mode config")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := watcher.LoadConfig(*configPath)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	provider := lang.Unavailable()
	if cfg.Lang.SidecarURL != "" {
		url := cfg.Lang.SidecarURL
		provider = lang.NewProvider(func() (lang.Capability, error) {
			return lang.Dial(url)
		}, log)
	}

	engine := analyze.NewEngine(provider, cfg.Limits.MaxTextBytes, 15*time.Minute, log)

	w, err := watcher.New(cfg.Paths.Input, processFile(engine, cfg.Paths.Output, log), log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil && err != context.Canceled {
		log.Error("watcher stopped", "error", err)
		os.Exit(1)
	}
}

// processFile analyzes one transcript and writes <name>.analysis.json to outDir.
func processFile(engine *analyze.Engine, outDir string, log *slog.Logger) watcher.Handler {
	return func(ctx context.Context, path string) error {
		filename := filepath.Base(path)

		p, err := parser.ForFile(filename)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		tr, err := p.Parse(f, filename)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		res := engine.Analyze(tr.Text)

		base := strings.TrimSuffix(filename, filepath.Ext(filename))
		outPath := filepath.Join(outDir, base+".analysis.json")
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}

		log.Info("wrote analysis",
			"input", path,
			"output", outPath,
			"action_items", len(res.ActionItems),
			"redactions", res.RedactionStats.TotalRedactions)
		return nil
	}
}
