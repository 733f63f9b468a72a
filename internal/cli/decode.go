package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaidlink/pkg/errors"
	mlio "github.com/matzehuels/mermaidlink/pkg/io"
	"github.com/matzehuels/mermaidlink/pkg/link"
)

// decodeOpts holds the command-line flags for the decode command.
type decodeOpts struct {
	baseURL string // endpoint the links were built against
	report  string // report file to decode instead of a single URL
}

// decodeCommand creates the decode command, the inverse of link.
func (c *CLI) decodeCommand() *cobra.Command {
	var opts decodeOpts

	cmd := &cobra.Command{
		Use:   "decode [url]",
		Short: "Print the diagram text embedded in a link",
		Long: `Decode strips the endpoint from a link and prints the original diagram text
exactly as it was encoded.

With --report every link in a report file is decoded; each diagram is preceded
by a "%% <label>" Mermaid comment line.`,
		Example: `  mermaidlink decode https://mermaid.ink/img/aGVsbG8=
  mermaidlink decode --report diagram_urls.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := link.NewBuilder(opts.baseURL)
			out := cmd.OutOrStdout()

			switch {
			case opts.report != "" && len(args) > 0:
				return errors.New(errors.ErrCodeInvalidInput, "--report cannot be combined with a url argument")
			case opts.report != "":
				return decodeReport(cmd, b, opts.report, out)
			case len(args) == 1:
				src, err := b.Decode(args[0])
				if err != nil {
					return err
				}
				_, err = io.WriteString(out, src)
				return err
			default:
				return errors.New(errors.ErrCodeInvalidInput, "a url or --report is required")
			}
		},
	}

	cmd.Flags().StringVar(&opts.baseURL, "base-url", link.DefaultBaseURL, "endpoint the links were built against")
	cmd.Flags().StringVarP(&opts.report, "report", "r", "", "decode every link in a report file")

	return cmd
}

func decodeReport(cmd *cobra.Command, b *link.Builder, path string, out io.Writer) error {
	entries, err := mlio.ImportReport(path)
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("read report", "path", path, "entries", len(entries))

	for _, e := range entries {
		src, err := b.Decode(e.URL)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Label, err)
		}
		if _, err := fmt.Fprintf(out, "%%%% %s\n%s\n", e.Label, src); err != nil {
			return err
		}
	}
	return nil
}
