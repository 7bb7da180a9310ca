package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFile_JSON_Auto_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewSnapshotValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "swiftcraft_cart_v1.json")
	if err := os.WriteFile(path, []byte(validSnapshotJSON("1", 2)), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected non-empty output")
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewSnapshotValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "carts.jsonl")
	content := oneLineJSON(validSnapshotJSON("1", 1)) + "\n" +
		oneLineJSON(validSnapshotJSON("", 1)) + "\n" + // пустой id
		oneLineJSON(validSnapshotJSON("3", 4)) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
}

func TestValidateFile_JSON_Invalid(t *testing.T) {
	ctx := context.Background()
	validator := NewSnapshotValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"items":[]}`), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatJSON, &out)
	if err == nil {
		t.Fatalf("expected error for non-array snapshot")
	}
	if summary != "0 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestValidateFile_ExplicitFormat(t *testing.T) {
	ctx := context.Background()
	validator := NewSnapshotValidator()

	// расширение .txt, но формат задан явно
	dir := t.TempDir()
	path := filepath.Join(dir, "carts.txt")
	if err := os.WriteFile(path, []byte(oneLineJSON(validSnapshotJSON("1", 1))+"\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatJSONL, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
}

func TestValidateFile_OpenError(t *testing.T) {
	ctx := context.Background()
	validator := NewSnapshotValidator()

	_, err := ValidateFile(ctx, validator, filepath.Join(t.TempDir(), "missing.json"), FormatJSON, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "open file") {
		t.Fatalf("expected open file error, got %v", err)
	}
}

func TestValidateFile_UnsupportedFormat(t *testing.T) {
	ctx := context.Background()
	validator := NewSnapshotValidator()

	_, err := ValidateFile(ctx, validator, "whatever.json", InputFormat("xml"), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

// ---- helpers ----

func oneLineJSON(s string) string {
	var b bytes.Buffer
	_ = json.Compact(&b, []byte(s))
	return b.String()
}
