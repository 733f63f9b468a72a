package link

import (
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/mermaidlink/pkg/errors"
)

// DefaultBaseURL is the mermaid.ink image endpoint.
const DefaultBaseURL = "https://mermaid.ink/img/"

// Builder builds links against a fixed endpoint.
type Builder struct {
	base  string
	codec Codec
}

// Option configures a Builder.
type Option func(*Builder)

// WithCodec replaces the default base64 codec.
func WithCodec(c Codec) Option {
	return func(b *Builder) {
		if c != nil {
			b.codec = c
		}
	}
}

// NewBuilder returns a Builder for base. An empty base selects [DefaultBaseURL].
func NewBuilder(base string, opts ...Option) *Builder {
	if base == "" {
		base = DefaultBaseURL
	}
	b := &Builder{base: base, codec: Base64Codec{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BaseURL returns the endpoint every link starts with.
func (b *Builder) BaseURL() string { return b.base }

// Make returns the endpoint followed by the encoded UTF-8 bytes of diagram.
func (b *Builder) Make(diagram string) (string, error) {
	if !utf8.ValidString(diagram) {
		return "", errors.New(errors.ErrCodeEncoding, "diagram text is not valid UTF-8")
	}
	segment, err := b.codec.Encode([]byte(diagram))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeEncoding, err, "encode diagram")
	}
	return b.base + segment, nil
}

// Decode reverses Make, returning the original diagram text.
func (b *Builder) Decode(url string) (string, error) {
	segment, ok := strings.CutPrefix(url, b.base)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidLink, "link does not start with %q", b.base)
	}
	data, err := b.codec.Decode(segment)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidLink, err, "decode segment")
	}
	if !utf8.Valid(data) {
		return "", errors.New(errors.ErrCodeEncoding, "decoded diagram is not valid UTF-8")
	}
	return string(data), nil
}

var defaultBuilder = NewBuilder(DefaultBaseURL)

// Make builds a link for diagram against [DefaultBaseURL].
func Make(diagram string) (string, error) {
	return defaultBuilder.Make(diagram)
}

// Decode reverses [Make] for links built against [DefaultBaseURL].
func Decode(url string) (string, error) {
	return defaultBuilder.Decode(url)
}
