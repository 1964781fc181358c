package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrinterTextMode(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(false)
	if err := p.Print([]string{"a.go", "b.go"}); err != nil {
		t.Fatalf("Print error: %v", err)
	}
	want := "a.go\nb.go\n"
	if buf.String() != want {
		t.Errorf("Print() = %q, want %q", buf.String(), want)
	}
}

func TestPrinterTextModeColorized(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(true)
	if err := p.Print([]string{"a.go"}); err != nil {
		t.Fatalf("Print error: %v", err)
	}
	if !strings.Contains(buf.String(), "a.go") {
		t.Errorf("expected colorized output to still contain the path, got %q", buf.String())
	}
}

func TestPrinterJSONMode(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithJSON(true)
	paths := []string{"a.go", "src/b.go"}
	if err := p.Print(paths); err != nil {
		t.Fatalf("Print error: %v", err)
	}

	var got []string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if len(got) != len(paths) {
		t.Fatalf("got %v, want %v", got, paths)
	}
	for i := range paths {
		if got[i] != paths[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], paths[i])
		}
	}
}

func TestPrinterEmptyPaths(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(false)
	if err := p.Print(nil); err != nil {
		t.Fatalf("Print error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for an empty path list, got %q", buf.String())
	}
}

func TestPrinterJSONModeIgnoresColors(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(true).WithJSON(true)
	if err := p.Print([]string{"a.go"}); err != nil {
		t.Fatalf("Print error: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected JSON output to never carry ANSI escapes, got %q", buf.String())
	}
}
