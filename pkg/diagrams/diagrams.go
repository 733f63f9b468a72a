// Package diagrams holds the built-in Mermaid definitions and loads custom ones.
//
// The built-in set documents the marketplace integration service: a sequence
// diagram of the request path (route, middleware, controller, service,
// repository, database) and an ER diagram of the marketplace auth tables.
// Both are embedded verbatim, including their leading and trailing newline,
// because the generated links encode the exact bytes.
package diagrams

import (
	_ "embed"
	"os"
	"unicode/utf8"

	"github.com/matzehuels/mermaidlink/pkg/errors"
)

//go:embed sequence.mmd
var sequenceSource string

//go:embed er.mmd
var erSource string

// Labels of the built-in diagrams, as they appear in the report.
const (
	LabelSequence = "Sequence"
	LabelER       = "ER"
)

// Diagram is a named Mermaid definition. Source is opaque text.
type Diagram struct {
	Name   string
	Label  string
	Source string
}

// Sequence returns the built-in request-flow sequence diagram.
func Sequence() Diagram {
	return Diagram{Name: "sequence", Label: LabelSequence, Source: sequenceSource}
}

// ER returns the built-in entity-relationship diagram.
func ER() Diagram {
	return Diagram{Name: "er", Label: LabelER, Source: erSource}
}

// Builtin returns the built-in diagrams in report order: sequence, then ER.
func Builtin() []Diagram {
	return []Diagram{Sequence(), ER()}
}

// Load reads a diagram definition from path and tags it with label.
func Load(label, path string) (Diagram, error) {
	if label == "" {
		return Diagram{}, errors.New(errors.ErrCodeInvalidInput, "diagram %s has no label", path)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Diagram{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "diagram %s", path)
	}
	if err != nil {
		return Diagram{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read diagram %s", path)
	}
	if !utf8.Valid(data) {
		return Diagram{}, errors.New(errors.ErrCodeEncoding, "diagram %s is not valid UTF-8", path)
	}
	return Diagram{Name: path, Label: label, Source: string(data)}, nil
}
