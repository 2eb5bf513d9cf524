package fontsrc

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNew_EmptyData(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Fatalf("New(nil) error = %v, want %v", err, ErrEmptyFontData)
	}
}

func TestNew_GarbageData(t *testing.T) {
	if _, err := New([]byte("not a font")); err == nil {
		t.Fatal("New(garbage) = nil error, want parse failure")
	}
}

func TestNew_UnknownParserFallsBack(t *testing.T) {
	src, err := New(goregular.TTF, WithParser("no-such-backend"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := src.GlyphIndex('A'); !ok {
		t.Error("default backend does not cover 'A'")
	}
}

// stubParser records that it was invoked.
type stubParser struct{ called bool }

func (p *stubParser) Parse(data []byte) (Source, error) {
	p.called = true
	return nil, errors.New("stub")
}

func TestRegisterParser(t *testing.T) {
	p := &stubParser{}
	RegisterParser("stub", p)

	_, err := New(goregular.TTF, WithParser("stub"))
	if err == nil || err.Error() != "stub" {
		t.Fatalf("New() error = %v, want stub error", err)
	}
	if !p.called {
		t.Error("registered parser was not invoked")
	}
}
