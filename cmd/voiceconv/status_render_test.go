package main

import (
	"bytes"
	"strings"
	"testing"

	"voiceconv/internal/deps"
)

func TestRenderStatusLinePlain(t *testing.T) {
	line := renderStatusLine("FFmpeg", statusOK, "Ready", false)
	if !strings.HasPrefix(line, "  FFmpeg:") || !strings.HasSuffix(line, "[OK] Ready") {
		t.Fatalf("unexpected line %q", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("expected no ANSI codes, got %q", line)
	}
}

func TestRenderStatusLineColor(t *testing.T) {
	line := renderStatusLine("FFprobe", statusWarn, "missing", true)
	if !strings.HasPrefix(line, statusStyles[statusWarn].color) || !strings.HasSuffix(line, ansiReset) {
		t.Fatalf("expected yellow line, got %q", line)
	}
}

func TestShouldColorizeNonTerminal(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}

func TestDependencyLines(t *testing.T) {
	lines := dependencyLines([]deps.Status{
		{Name: "FFmpeg", Available: true, Path: "/usr/bin/ffmpeg"},
		{Name: "FFprobe", Optional: true, Description: "Used by inspect and output verification", Detail: `binary "ffprobe" not found`},
	}, false)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "[OK] Ready (/usr/bin/ffmpeg)") {
		t.Fatalf("unexpected ready line %q", lines[0])
	}
	if !strings.Contains(lines[1], "[WARN]") || !strings.Contains(lines[1], "used by inspect") {
		t.Fatalf("unexpected optional line %q", lines[1])
	}
	if !strings.Contains(lines[2], "Missing") {
		t.Fatalf("unexpected summary line %q", lines[2])
	}
}

func TestRenderSectionHeaderUnderlinesTitle(t *testing.T) {
	lines := renderSectionHeader(" Paths ", false)
	if lines[0] != "== Paths ==" || lines[1] != "-----------" {
		t.Fatalf("unexpected header %q", lines)
	}
}
