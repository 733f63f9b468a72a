package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mermaidlink/pkg/io"
	"github.com/matzehuels/mermaidlink/pkg/link"
	"github.com/matzehuels/mermaidlink/pkg/observability"
)

// Runner executes pipeline stages and logs their progress.
//
// A Runner holds no per-run state; multiple goroutines may share one with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger selects log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Links builds one link per diagram without writing anything.
// The context is checked between diagrams.
func (r *Runner) Links(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	b := link.NewBuilder(opts.BaseURL)
	hooks := observability.Pipeline()
	result := &Result{Entries: make([]io.Entry, 0, len(opts.Diagrams))}

	for _, d := range opts.Diagrams {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		hooks.OnLinkStart(ctx, d.Label, len(d.Source))
		linkStart := time.Now()
		u, err := b.Make(d.Source)
		hooks.OnLinkComplete(ctx, d.Label, len(u), time.Since(linkStart), err)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Label, err)
		}

		r.Logger.Debug("built link", "diagram", d.Label, "source_bytes", len(d.Source), "url_bytes", len(u))
		result.Entries = append(result.Entries, io.Entry{Label: d.Label, URL: u})
		result.Stats.SourceBytes += len(d.Source)
		result.Stats.LinkBytes += len(u)
	}

	result.Stats.Diagrams = len(result.Entries)
	result.Stats.Duration = time.Since(start)
	return result, nil
}

// Execute builds every link and writes the report to opts.Output.
// A write failure is returned unchanged; nothing is retried.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	result, err := r.Links(ctx, opts)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("built links", "diagrams", result.Stats.Diagrams, "base_url", opts.BaseURL)

	hooks := observability.Pipeline()
	hooks.OnExportStart(ctx, opts.Output, len(result.Entries))
	exportStart := time.Now()
	err = io.ExportReport(opts.Output, result.Entries)
	hooks.OnExportComplete(ctx, opts.Output, time.Since(exportStart), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("wrote report", "path", opts.Output, "entries", len(result.Entries))
	result.Output = opts.Output
	result.Stats.Duration = time.Since(start)
	return result, nil
}
