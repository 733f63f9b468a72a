package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaidlink/pkg/config"
	"github.com/matzehuels/mermaidlink/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
// Empty fields fall back to the config file, then to built-in defaults.
type generateOpts struct {
	config  string // path to a .toml or .yaml config file
	output  string // report path
	baseURL string // rendering endpoint prefix
	print   bool   // also print each link to stdout
}

// generateCommand creates the generate command, which writes the link report.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the diagram link report",
		Long: `Generate builds one link per diagram and writes them to a report file:

  Sequence URL:
  https://mermaid.ink/img/...

  ER URL:
  https://mermaid.ink/img/...

Without --config the built-in sequence and ER diagrams are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "config file (.toml, .yaml, .yml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "report file (default "+config.DefaultOutput+")")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "rendering endpoint (default "+config.DefaultBaseURL+")")
	cmd.Flags().BoolVarP(&opts.print, "print", "p", false, "print each link after writing the report")

	return cmd
}

// loadConfig returns the config named by opts with flag overrides applied.
func loadConfig(opts generateOpts) (*config.Config, error) {
	cfg := config.Default()
	if opts.config != "" {
		loaded, err := config.Load(opts.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if opts.baseURL != "" {
		cfg.BaseURL = opts.baseURL
	}
	return cfg, nil
}

// runGenerate builds every link and writes the report. A failure to write the
// report is returned to the caller as-is.
func runGenerate(ctx context.Context, opts generateOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if cfg.File != "" {
		printInfo("Using config %s", cfg.File)
	}

	popts, err := pipeline.FromConfig(cfg)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, popts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d links", len(result.Entries)))

	printSuccess("Wrote %d links", len(result.Entries))
	printFile(result.Output)
	for _, e := range result.Entries {
		if opts.print {
			printLink(e.Label, e.URL)
		} else {
			printDetail("%s: %d characters", e.Label, len(e.URL))
		}
	}
	return nil
}
