package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaidlink/pkg/diagrams"
	"github.com/matzehuels/mermaidlink/pkg/errors"
	"github.com/matzehuels/mermaidlink/pkg/link"
)

// linkOpts holds the command-line flags for the link command.
type linkOpts struct {
	baseURL string // rendering endpoint prefix
	builtin string // name of a built-in diagram instead of a file
}

// linkCommand creates the link command, which prints the link for one diagram.
func (c *CLI) linkCommand() *cobra.Command {
	var opts linkOpts

	cmd := &cobra.Command{
		Use:   "link [file]",
		Short: "Print the link for a single diagram",
		Long: `Link reads a Mermaid definition from file (or stdin when file is "-" or
omitted) and prints its rendering link. The text is encoded byte for byte;
trailing newlines are part of the diagram.`,
		Example: `  mermaidlink link flow.mmd
  echo 'graph TD; A-->B' | mermaidlink link
  mermaidlink link --builtin er`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args, opts.builtin)
			if err != nil {
				return err
			}
			u, err := link.NewBuilder(opts.baseURL).Make(src)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("built link", "source_bytes", len(src), "url_bytes", len(u))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.baseURL, "base-url", link.DefaultBaseURL, "rendering endpoint")
	cmd.Flags().StringVar(&opts.builtin, "builtin", "", "use a built-in diagram: sequence, er")

	return cmd
}

// readSource returns diagram text from a built-in name, a file, or stdin.
func readSource(cmd *cobra.Command, args []string, builtin string) (string, error) {
	if builtin != "" {
		if len(args) > 0 {
			return "", errors.New(errors.ErrCodeInvalidInput, "--builtin cannot be combined with a file argument")
		}
		return builtinSource(builtin)
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if os.IsNotExist(err) {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "diagram %s", args[0])
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", args[0])
	}
	return string(data), nil
}

func builtinSource(name string) (string, error) {
	for _, d := range diagrams.Builtin() {
		if d.Name == name {
			return d.Source, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown built-in diagram %q (want sequence or er)", name)
}
