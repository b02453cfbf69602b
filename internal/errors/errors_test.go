package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"unknown strategy", "T001", "Unknown strategy", CategoryResolve},
		{"malformed descriptor", "T002", "Malformed content descriptor", CategoryNormalize},
		{"unknown shape", "T003", "Unknown icon shape", CategoryRender},
		{"snapshot", "T030", "Snapshot store failed", CategorySnapshot},
		{"unregistered code", "T999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := New("T001").WithDetailf("strategy %q is not registered", "pie")
	want := `T001: Unknown strategy: strategy "pie" is not registered`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	plain := Newf(CategoryCLI, "missing %s", "document")
	if plain.Error() != "missing document" {
		t.Errorf("Error() = %q", plain.Error())
	}
}

func TestWrapAndIs(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := fmt.Errorf("render: %w", New("T002").Wrap(sentinel))

	if !stderrors.Is(err, sentinel) {
		t.Errorf("errors.Is(sentinel) = false")
	}
	if !HasCode(err, "T002") {
		t.Errorf("HasCode(T002) = false")
	}
	if HasCode(err, "T001") {
		t.Errorf("HasCode(T001) = true")
	}
	if CodeOf(err) != "T002" {
		t.Errorf("CodeOf = %q", CodeOf(err))
	}
	if CodeOf(sentinel) != "" {
		t.Errorf("CodeOf(plain) = %q", CodeOf(sentinel))
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "T030") != nil {
		t.Errorf("FromError(nil) should be nil")
	}

	coded := New("T001")
	if FromError(fmt.Errorf("ctx: %w", coded), "T030") != coded {
		t.Errorf("FromError should keep an existing code")
	}

	wrapped := FromError(stderrors.New("disk full"), "T030")
	if wrapped.Code != "T030" || wrapped.Wrapped == nil {
		t.Errorf("FromError = %+v", wrapped)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New("T001").
		WithDetail(`strategy "pie" is not registered`).
		WithSuggestion("use one of: keyValue, table").
		Wrap(stderrors.New("lookup failed")).
		Format()

	for _, want := range []string{
		"ERROR T001: Unknown strategy",
		`strategy "pie" is not registered`,
		"Cause: lookup failed",
		"Hint: use one of: keyValue, table",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestCodesSorted(t *testing.T) {
	codes := Codes()
	if len(codes) == 0 || codes[0] != "T001" {
		t.Fatalf("Codes() = %v", codes)
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("codes not sorted: %v", codes)
		}
	}
	if _, ok := Template("T020"); !ok {
		t.Errorf("Template(T020) missing")
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
