package app

import (
	"context"
	_ "embed"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/ldaggo/internal/ctxlog"
	"github.com/vk/ldaggo/internal/scheduler"
	"github.com/vk/ldaggo/internal/treefile"
)

// referenceTreeHCL describes (A + B * C) / D, the tree analysed when no tree
// file is given.
//
//go:embed reference.hcl
var referenceTreeHCL []byte

// TreeLoader loads a tree description from a path.
type TreeLoader interface {
	Load(ctx context.Context, path string) (*treefile.Document, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	loader    TreeLoader
	scheduler scheduler.Scheduler
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW. Each App gets its own isolated logger tagged with a run ID.
func NewApp(outW, logW io.Writer, cfg *Config, loader TreeLoader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", uuid.NewString())
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = treefile.NewLoader()
	}

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		loader:    loader,
		scheduler: scheduler.New(),
	}
}

// loadDocument returns the configured tree, or the reference tree when no
// tree path is set.
func (a *App) loadDocument(ctx context.Context) (*treefile.Document, error) {
	if a.config.TreePath == "" {
		ctxlog.FromContext(ctx).Debug("No tree file given, using the reference tree.")
		return treefile.DecodeHCL(ctx, "reference.hcl", referenceTreeHCL)
	}
	return a.loader.Load(ctx, a.config.TreePath)
}
