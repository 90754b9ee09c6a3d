// Command clickgrid reads a levels XML file, solves a single level or an
// open range of levels, and writes the best solution found back into each
// level's solution attribute.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"clickgrid/internal/config"
	"clickgrid/internal/coordinator"
	"clickgrid/internal/levelfile"
	"clickgrid/internal/progressserver"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("clickgrid", flag.ContinueOnError)
	levelsPath := fs.String("levels", "levels.xml", "path to the levels XML file")
	which := fs.String("level", "1+", "a level number, or N+ for N onward")
	configPath := fs.String("config", "", "optional solver config YAML path")
	progressAddr := fs.String("progress-addr", "", "if set, serve live progress on this address (e.g. :8089)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := defaultConfigOrLoad(logger, *configPath)

	doc, err := levelfile.Load(*levelsPath)
	if err != nil {
		logger.Error("failed to load levels file", "path", *levelsPath, "err", err)
		return 1
	}

	start, open, err := parseLevelSelector(*which)
	if err != nil {
		logger.Error("invalid -level selector", "value", *which, "err", err)
		return 1
	}

	ctx := context.Background()
	var progressEvents chan coordinator.ProgressEvent
	if *progressAddr != "" {
		progressEvents = make(chan coordinator.ProgressEvent, 64)
		srv := progressserver.New(*progressAddr, progressEvents)
		srvCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := srv.Serve(srvCtx); err != nil {
				logger.Error("progress server exited with error", "err", err)
			}
		}()
	}

	solvedAny := false
	for i := range doc.Levels {
		lv := &doc.Levels[i]
		if lv.Number < start {
			continue
		}
		if !open && lv.Number != start {
			continue
		}

		logger.Info("solving level", "number", lv.Number)
		b := lv.ToBoard()

		runCtx, cancel := cfg.WithDeadline(ctx)
		outcome, ok := coordinator.Run(runCtx, b, coordinator.Config{
			Strategies: cfg.Strategies,
			K:          cfg.K,
			Options:    cfg.SearchOptions(),
			Progress:   progressEvents,
		})
		cancel()

		if !ok {
			logger.Warn("no strategy solved level", "number", lv.Number)
			continue
		}

		solvedAny = true
		*lv = levelfile.FromBoard(lv.Number, b, outcome.Board)
		logger.Info("level solved", "number", lv.Number, "strategy", outcome.Strategy, "moves", outcome.Board.Moves.Len())
	}

	if progressEvents != nil {
		close(progressEvents)
	}

	if solvedAny {
		if err := levelfile.Save(*levelsPath, doc); err != nil {
			logger.Error("failed to write solutions back", "path", *levelsPath, "err", err)
			return 1
		}
	}

	return 0
}

func defaultConfigOrLoad(logger *slog.Logger, path string) *config.Solver {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.FromYaml(path)
	if err != nil {
		logger.Warn("failed to load solver config, using defaults", "path", path, "err", err)
		return config.Default()
	}
	return cfg
}

// parseLevelSelector parses "N" or "N+" into a start number and whether the
// range is open-ended, per §6's CLI surface.
func parseLevelSelector(s string) (start int, open bool, err error) {
	s = strings.TrimSpace(s)
	open = strings.HasSuffix(s, "+")
	numPart := strings.TrimSuffix(s, "+")
	n, err := strconv.Atoi(numPart)
	if err != nil {
		return 0, false, fmt.Errorf("parse level selector %q: %w", s, err)
	}
	return n, open, nil
}
