package link

import (
	"encoding/base64"
	"strings"
	"sync"
	"testing"

	"github.com/matzehuels/mermaidlink/pkg/errors"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"hello", "hello", DefaultBaseURL + "aGVsbG8="},
		{"empty", "", DefaultBaseURL},
		{"reserved characters", "a b\nc/d?e#f&g", DefaultBaseURL + "YSBiCmMvZD9lI2YmZw=="},
		{"multi-byte unicode", "日本語 ✓ 🚀", DefaultBaseURL + "5pel5pys6KqeIOKckyDwn5qA"},
		{"control bytes", "\x00\x01", DefaultBaseURL + "AAE="},
		{"keeps plus", "~~~", DefaultBaseURL + "fn5+"},
		{"keeps slash", "???", DefaultBaseURL + "Pz8/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Make(tt.input)
			if err != nil {
				t.Fatalf("Make(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"sequenceDiagram\n    Cliente->>Rota: Requisição HTTP\n",
		"erDiagram\n    a ||--|| b : \"possui autenticação para\"\n",
		"tabs\tand\r\nCRLF",
		"emoji 🧜‍♀️ and ZWJ",
		strings.Repeat("x", 4096),
	}

	for _, in := range inputs {
		u, err := Make(in)
		if err != nil {
			t.Fatalf("Make(%q) error: %v", in, err)
		}
		if !strings.HasPrefix(u, DefaultBaseURL) {
			t.Errorf("Make(%q) = %q, missing prefix %q", in, u, DefaultBaseURL)
		}
		if strings.ContainsAny(u, "\r\n") {
			t.Errorf("Make(%q) produced a multi-line link", in)
		}

		// Decode the segment directly, independent of Decode.
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(u, DefaultBaseURL))
		if err != nil {
			t.Fatalf("segment of %q is not standard base64: %v", u, err)
		}
		if string(raw) != in {
			t.Errorf("segment decodes to %q, want %q", raw, in)
		}

		got, err := Decode(u)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", u, err)
		}
		if got != in {
			t.Errorf("Decode(Make(%q)) = %q", in, got)
		}
	}
}

func TestMakeDeterministic(t *testing.T) {
	const src = "sequenceDiagram\n    participant A\n    A->>B: hi\n"
	first, err := Make(src)
	if err != nil {
		t.Fatalf("Make error: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, _ := Make(src)
		if got != first {
			t.Fatalf("Make call %d = %q, want %q", i, got, first)
		}
	}
}

func TestMakeConcurrent(t *testing.T) {
	const src = "graph TD; A-->B"
	want, _ := Make(src)

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got, _ := Make(src); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent Make = %q, want %q", got, want)
	}
}

func TestMakeInvalidUTF8(t *testing.T) {
	_, err := Make("ok\xffnot ok")
	if err == nil {
		t.Fatal("Make should reject invalid UTF-8")
	}
	if !errors.Is(err, errors.ErrCodeEncoding) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeEncoding)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		url  string
		code errors.Code
	}{
		{"foreign prefix", "https://example.com/img/aGVsbG8=", errors.ErrCodeInvalidLink},
		{"bad base64", DefaultBaseURL + "not*base64", errors.ErrCodeInvalidLink},
		{"missing padding", DefaultBaseURL + "aGVsbG8", errors.ErrCodeInvalidLink},
		{"url-safe alphabet", DefaultBaseURL + "fn5-", errors.ErrCodeInvalidLink},
		{"not utf-8", DefaultBaseURL + "//8=", errors.ErrCodeEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.url)
			if err == nil {
				t.Fatalf("Decode(%q) should fail", tt.url)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode(%q) code = %v, want %v", tt.url, errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestNewBuilder(t *testing.T) {
	t.Run("empty base uses default", func(t *testing.T) {
		b := NewBuilder("")
		if b.BaseURL() != DefaultBaseURL {
			t.Errorf("BaseURL() = %q, want %q", b.BaseURL(), DefaultBaseURL)
		}
	})

	t.Run("custom base", func(t *testing.T) {
		const base = "https://render.example.com/svg/"
		b := NewBuilder(base)
		got, err := b.Make("hello")
		if err != nil {
			t.Fatalf("Make error: %v", err)
		}
		if got != base+"aGVsbG8=" {
			t.Errorf("Make = %q, want %q", got, base+"aGVsbG8=")
		}

		back, err := b.Decode(got)
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		if back != "hello" {
			t.Errorf("Decode = %q, want %q", back, "hello")
		}

		if _, err := Decode(got); !errors.Is(err, errors.ErrCodeInvalidLink) {
			t.Errorf("default Decode of custom link: err = %v, want INVALID_LINK", err)
		}
	})

	t.Run("custom codec", func(t *testing.T) {
		b := NewBuilder("x:", WithCodec(upperCodec{}))
		got, _ := b.Make("abc")
		if got != "x:ABC" {
			t.Errorf("Make = %q, want %q", got, "x:ABC")
		}
	})

	t.Run("nil codec ignored", func(t *testing.T) {
		b := NewBuilder("", WithCodec(nil))
		got, _ := b.Make("hello")
		if got != DefaultBaseURL+"aGVsbG8=" {
			t.Errorf("Make = %q", got)
		}
	})
}

type upperCodec struct{}

func (upperCodec) Encode(b []byte) (string, error) { return strings.ToUpper(string(b)), nil }
func (upperCodec) Decode(s string) ([]byte, error) { return []byte(strings.ToLower(s)), nil }
