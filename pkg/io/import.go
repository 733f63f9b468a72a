package io

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/mermaidlink/pkg/errors"
)

// ReadReport parses a report written by [WriteReport].
//
// Blank lines between sections are optional and a trailing newline is
// tolerated. A label line without a following URL, or a URL without a label,
// is an INVALID_INPUT error. ReadReport does not close r.
func ReadReport(r io.Reader) ([]Entry, error) {
	var (
		entries     []Entry
		pending     string
		havePending bool
		lineNo      int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		if label, ok := strings.CutSuffix(line, labelSuffix); ok && !havePending {
			pending, havePending = label, true
			continue
		}
		if !havePending {
			return nil, errors.New(errors.ErrCodeInvalidInput, "line %d: URL without a label", lineNo)
		}
		entries = append(entries, Entry{Label: pending, URL: line})
		havePending = false
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read report")
	}
	if havePending {
		return nil, errors.New(errors.ErrCodeInvalidInput, "label %q has no URL", pending)
	}
	return entries, nil
}

// ImportReport reads a report from the file at path.
func ImportReport(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "report %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadReport(f)
}
