package io

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/mermaidlink/pkg/errors"
)

// labelSuffix follows every section label, e.g. "Sequence URL:".
const labelSuffix = " URL:"

// Entry is one report section: a label and the link generated for it.
type Entry struct {
	Label string
	URL   string
}

// WriteReport writes entries to w in report format.
//
// Each section is the label line followed by the URL line; sections are
// separated by one blank line. No newline follows the last URL.
func WriteReport(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for i, e := range entries {
		if i > 0 {
			bw.WriteString("\n\n")
		}
		bw.WriteString(e.Label + labelSuffix + "\n")
		bw.WriteString(e.URL)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// ExportReport writes entries to a file at path, replacing any existing file.
// Failures are returned as-is with code WRITE_FAILED; nothing is retried.
func ExportReport(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	if err := WriteReport(f, entries); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "close %s", path)
	}
	return nil
}
