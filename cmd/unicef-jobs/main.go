package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cinfoposte/unicef-jobs/internal/build"
	"github.com/cinfoposte/unicef-jobs/internal/classify"
	"github.com/cinfoposte/unicef-jobs/internal/config"
	"github.com/cinfoposte/unicef-jobs/internal/fetch"
	"github.com/cinfoposte/unicef-jobs/internal/logger"
	"github.com/cinfoposte/unicef-jobs/internal/rss"
	"github.com/cinfoposte/unicef-jobs/internal/run"
)

func main() {
	cfg := config.Default()
	logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outPath := cfg.Output.ResolvePath(exeDir())

	r := &run.Runner{
		Source:     fetch.New(cfg.Feed),
		Classifier: classify.New(cfg.Filters),
		Builder:    build.NewBuilder(cfg.Feed.SourceName),
		Sink:       rss.NewWriter(outPath, cfg.Channel),
		MaxItems:   cfg.Output.MaxItems,
	}

	start := time.Now()
	sum, err := r.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		stop()
		os.Exit(1)
	}

	sum.OutputPath = outPath
	run.PrintSummary(os.Stdout, sum)
	log.Info().Dur("took", time.Since(start)).Str("output", outPath).Msg("done")
}

// exeDir is the directory holding the running binary, or "" when it cannot
// be found, which leaves the output path relative to the working directory.
func exeDir() string {
	exe, err := os.Executable()
	if err != nil {
		log.Warn().Err(err).Msg("cannot locate executable; writing relative to working directory")
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
