package app

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cthing/pathwalk/internal/config"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("io.Copy: %v", err)
	}
	return buf.String()
}

func TestRunPrintsMatchedPaths(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := &config.Config{Root: root, MaxDepth: -1, LogLevel: "none"}
	out := captureStdout(t, func() {
		if err := Run(cfg); err != nil {
			t.Fatalf("Run error: %v", err)
		}
	})

	if !bytes.Contains([]byte(out), []byte("main.go")) {
		t.Errorf("expected output to mention main.go, got %q", out)
	}
}

func TestRunJSONOutput(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.go"), []byte("package a\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := &config.Config{Root: root, MaxDepth: -1, LogLevel: "none", JSON: true}
	out := captureStdout(t, func() {
		if err := Run(cfg); err != nil {
			t.Fatalf("Run error: %v", err)
		}
	})

	if !bytes.Contains([]byte(out), []byte("[")) {
		t.Errorf("expected JSON array output, got %q", out)
	}
}

func TestRunReturnsErrorForMissingRoot(t *testing.T) {
	cfg := &config.Config{Root: filepath.Join(t.TempDir(), "does-not-exist"), MaxDepth: -1, LogLevel: "none"}
	if err := Run(cfg); err == nil {
		t.Error("expected Run to return an error for a nonexistent root")
	}
}
