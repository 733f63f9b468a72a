// Package link turns Mermaid diagram definitions into shareable rendering URLs.
//
// # Overview
//
// A link is a fixed base endpoint followed by the diagram text encoded as
// standard, padded base64 of its UTF-8 bytes:
//
//	https://mermaid.ink/img/<base64(utf8(diagram))>
//
// The rendering service decodes the segment and returns an image. This package
// only builds (and reverses) the URL; it never contacts the endpoint and never
// looks inside the diagram text.
//
// # Alphabet
//
// The standard base64 alphabet contains '+' and '/', which are not strictly
// safe inside a URL path segment. They are kept as-is because the rendering
// endpoint expects that alphabet; swapping to the URL-safe variant or
// percent-escaping would produce links the service does not accept.
//
// # Usage
//
//	u, err := link.Make("graph TD; A-->B")
//	if err != nil {
//	    return err
//	}
//
//	// Custom endpoint
//	b := link.NewBuilder("https://mermaid.example.com/img/")
//	u, err = b.Make(src)
//
//	// Reverse
//	src, err := link.Decode(u)
//
// # Errors
//
// Go strings may hold arbitrary bytes. Text that is not valid UTF-8 is rejected
// with an error coded [errors.ErrCodeEncoding]. Decoding a URL that does not
// carry the builder's endpoint, or whose segment is not valid base64, fails
// with [errors.ErrCodeInvalidLink].
//
// # Concurrency
//
// A [Builder] is immutable after construction and all functions are pure, so
// they are safe for concurrent use.
//
// [errors.ErrCodeEncoding]: github.com/matzehuels/mermaidlink/pkg/errors.ErrCodeEncoding
// [errors.ErrCodeInvalidLink]: github.com/matzehuels/mermaidlink/pkg/errors.ErrCodeInvalidLink
package link
