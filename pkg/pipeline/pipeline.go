// Package pipeline runs the generate flow: diagrams -> links -> report file.
//
// Both the generate command and tests drive link generation through a
// [Runner] so logging, hooks and defaults stay in one place.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Output) // diagram_urls.txt
//
// Zero Options select the built-in diagrams, the mermaid.ink endpoint and the
// default report path. Use [FromConfig] to build Options from a config file.
package pipeline

import (
	"time"

	"github.com/matzehuels/mermaidlink/pkg/config"
	"github.com/matzehuels/mermaidlink/pkg/diagrams"
	"github.com/matzehuels/mermaidlink/pkg/errors"
	"github.com/matzehuels/mermaidlink/pkg/io"
)

// Options configures a pipeline run.
type Options struct {
	// BaseURL is the rendering endpoint prefix. Defaults to config.DefaultBaseURL.
	BaseURL string

	// Output is the report path. Defaults to config.DefaultOutput.
	Output string

	// Diagrams are encoded in order. Defaults to diagrams.Builtin().
	Diagrams []diagrams.Diagram
}

// ValidateAndSetDefaults fills empty fields and rejects unusable diagrams.
func (o *Options) ValidateAndSetDefaults() error {
	if o.BaseURL == "" {
		o.BaseURL = config.DefaultBaseURL
	}
	if o.Output == "" {
		o.Output = config.DefaultOutput
	}
	if len(o.Diagrams) == 0 {
		o.Diagrams = diagrams.Builtin()
	}
	for i, d := range o.Diagrams {
		if d.Label == "" {
			return errors.New(errors.ErrCodeInvalidInput, "diagram %d (%s) has no label", i, d.Name)
		}
	}
	return nil
}

// FromConfig builds Options from a loaded config, reading every configured
// diagram from disk. An empty diagram list keeps the built-ins.
func FromConfig(c *config.Config) (Options, error) {
	opts := Options{BaseURL: c.BaseURL, Output: c.Output}
	for _, src := range c.Diagrams {
		d, err := diagrams.Load(src.Label, src.Path)
		if err != nil {
			return Options{}, err
		}
		opts.Diagrams = append(opts.Diagrams, d)
	}
	return opts, nil
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Entries holds one labeled link per diagram, in input order.
	Entries []io.Entry

	// Output is the report path written by Execute; empty after Links.
	Output string

	Stats Stats
}

// Stats summarizes a run.
type Stats struct {
	Diagrams    int
	SourceBytes int
	LinkBytes   int
	Duration    time.Duration
}
