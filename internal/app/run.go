package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/ldaggo/internal/ctxlog"
	"github.com/vk/ldaggo/internal/ldag"
	"github.com/vk/ldaggo/internal/nodepath"
	"github.com/vk/ldaggo/internal/report"
	"github.com/vk/ldaggo/internal/treefile"
)

// Run executes one analysis: load, assign positions, query, report, export.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	doc, err := a.loadDocument(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}
	tree := ldag.NewTree(doc.Root)
	defer func() {
		released := tree.Release()
		a.logger.Debug("Tree released.", "nodes", released)
	}()

	ctx = ctxlog.With(ctx, "tree", doc.Name)
	logger := ctxlog.FromContext(ctx)
	if tree.Root == nil {
		logger.Warn("Tree is empty, report will have no nodes.")
	}

	start := a.startPosition(doc)
	tree.AssignPositions(start)
	logger.Debug("QH positions assigned.", "start", start)

	pair, err := a.resolvePair(ctx, tree.Root)
	if err != nil {
		return err
	}

	r := report.Build(doc.Name, tree.Root, start, a.scheduler, pair)
	logger.Info("Analysis complete.", "nodes", r.NodeCount, "depth", r.Depth)

	if err := a.writeReport(r); err != nil {
		return err
	}

	if a.config.ExportPath != "" {
		if err := a.export(ctx, doc, start); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// startPosition picks the explicit setting, then the file's, then 0.
func (a *App) startPosition(doc *treefile.Document) int {
	switch {
	case a.config.StartPosition != nil:
		return *a.config.StartPosition
	case doc.StartPosition != nil:
		return *doc.StartPosition
	default:
		return 0
	}
}

// resolvePair looks up the nodes of the distance query. Nodes chosen by the
// user must exist; the default pair is dropped when the tree has no such nodes.
func (a *App) resolvePair(ctx context.Context, root *ldag.Node) (*report.Pair, error) {
	logger := ctxlog.FromContext(ctx)

	from, to := a.config.From, a.config.To
	if !a.config.explicitPair() {
		from, to = DefaultFrom, DefaultTo
	}

	u, errFrom := nodepath.Lookup(root, from)
	v, errTo := nodepath.Lookup(root, to)
	if err := errors.Join(errFrom, errTo); err != nil {
		if a.config.explicitPair() {
			return nil, fmt.Errorf("failed to resolve distance query: %w", err)
		}
		logger.Debug("Default distance query does not fit this tree, skipping.", "error", err)
		return nil, nil
	}

	logger.Debug("Distance query resolved.", "from", from, "to", to)
	return &report.Pair{From: u, To: v}, nil
}

func (a *App) writeReport(r *report.Report) error {
	var err error
	if a.config.Format == "json" {
		err = report.WriteJSON(a.outW, r)
	} else {
		err = report.WriteText(a.outW, r)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// export writes the analysed tree as HCL, recording the start position used.
func (a *App) export(ctx context.Context, doc *treefile.Document, start int) (err error) {
	f, err := os.Create(a.config.ExportPath)
	if err != nil {
		return fmt.Errorf("failed to export tree: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to export tree: %w", cerr)
		}
	}()

	out := &treefile.Document{Name: doc.Name, StartPosition: &start, Root: doc.Root}
	if err := treefile.Encode(f, out); err != nil {
		return fmt.Errorf("failed to export tree: %w", err)
	}
	ctxlog.FromContext(ctx).Info("Tree exported.", "path", a.config.ExportPath)
	return nil
}
