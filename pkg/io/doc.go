// Package io reads and writes the link report file.
//
// # Format
//
// The report is plain text: one section per diagram, in generation order.
// Each section is a label line ending in " URL:" followed by the link, and
// sections are separated by a blank line:
//
//	Sequence URL:
//	https://mermaid.ink/img/CnNlcXVlbmNlRGlhZ3JhbQo...
//
//	ER URL:
//	https://mermaid.ink/img/CmVyRGlhZ3JhbQo...
//
// The file does not end with a newline.
//
// # Export
//
// Use [ExportReport] to write a report to a file, or [WriteReport] to write
// to any io.Writer. File errors (permissions, missing directory, full disk)
// are returned with code WRITE_FAILED and are never retried.
//
// # Import
//
// Use [ImportReport] or [ReadReport] to read a report back, e.g. to decode
// every link it contains. Reading is lenient about blank lines so hand-edited
// reports still parse.
package io
