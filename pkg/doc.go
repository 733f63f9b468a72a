// Package pkg provides the libraries behind mermaidlink.
//
// # Overview
//
// Mermaidlink turns Mermaid diagram definitions into mermaid.ink rendering
// links. The pkg directory is organized as:
//
//  1. [link] - The link encoder and decoder (the core operation)
//  2. [diagrams] - Built-in diagram definitions and file loading
//  3. [io] - Report file export and import
//  4. [config] - Optional TOML/YAML configuration
//  5. [pipeline] - Orchestration (diagrams → links → report)
//  6. [observability], [errors], [buildinfo] - Supporting packages
//
// # Data Flow
//
//	Built-in or configured diagrams
//	         ↓
//	    [diagrams] package (load text)
//	         ↓
//	    [link] package (UTF-8 → base64 → endpoint + segment)
//	         ↓
//	    [io] package (labeled report file)
//
// # Quick Start
//
//	import "github.com/matzehuels/mermaidlink/pkg/link"
//
//	u, err := link.Make("graph TD; A-->B")
//	// https://mermaid.ink/img/Z3JhcGggVEQ7IEEtLT5C
//
// [link]: github.com/matzehuels/mermaidlink/pkg/link
// [diagrams]: github.com/matzehuels/mermaidlink/pkg/diagrams
// [io]: github.com/matzehuels/mermaidlink/pkg/io
// [config]: github.com/matzehuels/mermaidlink/pkg/config
// [pipeline]: github.com/matzehuels/mermaidlink/pkg/pipeline
// [observability]: github.com/matzehuels/mermaidlink/pkg/observability
// [errors]: github.com/matzehuels/mermaidlink/pkg/errors
// [buildinfo]: github.com/matzehuels/mermaidlink/pkg/buildinfo
package pkg
