package pathwalk

import "testing"

func TestCompileIgnoreLineSkipsBlankAndComment(t *testing.T) {
	tests := []string{"", "   ", "# a comment", "   # indented comment"}
	for _, line := range tests {
		p, err := compileIgnoreLine(line, true, nil)
		if err != nil {
			t.Errorf("compileIgnoreLine(%q) error: %v", line, err)
		}
		if p != nil {
			t.Errorf("compileIgnoreLine(%q) = %+v, want nil", line, p)
		}
	}
}

func TestCompileIgnoreLineFlags(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantNegated bool
		wantDirOnly bool
	}{
		{"plain", "build", false, false},
		{"negated", "!keep.log", true, false},
		{"dir only", "build/", false, true},
		{"negated dir only", "!vendor/", true, true},
		{"anchored", "/root-only.txt", false, false},
		{"escaped bang is literal", `\!literal`, false, false},
		{"escaped hash is literal", `\#literal`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := compileIgnoreLine(tt.line, true, nil)
			if err != nil {
				t.Fatalf("compileIgnoreLine(%q) error: %v", tt.line, err)
			}
			if p == nil {
				t.Fatalf("compileIgnoreLine(%q) = nil, want a pattern", tt.line)
			}
			if p.negated != tt.wantNegated {
				t.Errorf("negated = %v, want %v", p.negated, tt.wantNegated)
			}
			if p.dirOnly != tt.wantDirOnly {
				t.Errorf("dirOnly = %v, want %v", p.dirOnly, tt.wantDirOnly)
			}
		})
	}
}

func TestCompileIgnoreLineUnanchoredGetsRecursivePrefix(t *testing.T) {
	p, err := compileIgnoreLine("*.log", true, nil)
	if err != nil {
		t.Fatalf("compileIgnoreLine error: %v", err)
	}
	if !p.glob.Match("nested/deep/output.log") {
		t.Error("expected an unanchored pattern to match at any depth")
	}
}

func TestCompileIgnoreLineDoubleStarSuffixMatchesContents(t *testing.T) {
	p, err := compileIgnoreLine("build/**", true, nil)
	if err != nil {
		t.Fatalf("compileIgnoreLine error: %v", err)
	}
	if !p.glob.Match("build/output/bin") {
		t.Error("expected build/** to match everything under build/")
	}
}

func TestCompileIgnoreLineTrailingWhitespace(t *testing.T) {
	p, err := compileIgnoreLine("build.log   ", true, nil)
	if err != nil {
		t.Fatalf("compileIgnoreLine error: %v", err)
	}
	if p.original != "build.log   " {
		t.Errorf("original should preserve the raw line, got %q", p.original)
	}
	if !p.glob.Match("build.log") {
		t.Error("trailing unescaped whitespace should have been trimmed before compiling")
	}
}

func TestCompileIgnoreLineEscapedTrailingSpace(t *testing.T) {
	p, err := compileIgnoreLine(`file\ `, true, nil)
	if err != nil {
		t.Fatalf("compileIgnoreLine error: %v", err)
	}
	if !p.glob.Match("file ") {
		t.Error("expected an escaped trailing space to survive as a literal space")
	}
}
