package preflight

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"voiceconv/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDirectoryAccess_Empty(t *testing.T) {
	if result := CheckDirectoryAccess("test", ""); result.Passed {
		t.Fatal("expected failure for empty path")
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	results := RunAll(context.Background(), nil)
	if results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll_DefaultConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.OutputDir = t.TempDir()

	results := RunAll(context.Background(), &cfg)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !results[0].Passed {
		t.Errorf("check %q failed: %s", results[0].Name, results[0].Detail)
	}
}

func TestRunAll_IncludesLogDirWhenFileLogging(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.OutputDir = t.TempDir()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "missing")
	cfg.Logging.File = true

	results := RunAll(context.Background(), &cfg)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[1].Name != "Log directory" || results[1].Passed {
		t.Fatalf("expected failing log directory check, got %+v", results[1])
	}
}

func TestCheckSystemDeps(t *testing.T) {
	binDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(binDir, "ffmpeg"), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir)

	cfg := config.Default()
	statuses := CheckSystemDeps(&cfg)
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].Name != "FFmpeg" || !statuses[0].Available || statuses[0].Optional {
		t.Fatalf("unexpected ffmpeg status: %+v", statuses[0])
	}
	if statuses[1].Name != "FFprobe" || statuses[1].Available || !statuses[1].Optional {
		t.Fatalf("unexpected ffprobe status: %+v", statuses[1])
	}
}

func TestParseVersionLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ffmpeg version 6.1.1-3ubuntu5 Copyright (c) 2000-2023\nbuilt with gcc", "6.1.1"},
		{"ffmpeg version n7.0 Copyright", "n7.0"},
		{"garbage", ""},
	}
	for _, tc := range tests {
		if got := parseVersionLine(tc.input); got != tc.want {
			t.Errorf("parseVersionLine(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestProbeTranscoderMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	probe := ProbeTranscoder(context.Background(), "ffmpeg")
	if probe.Available {
		t.Fatal("expected missing transcoder")
	}
	if probe.Detail() != "ffmpeg not found" {
		t.Fatalf("unexpected detail %q", probe.Detail())
	}
}

func TestProbeTranscoderVersion(t *testing.T) {
	binDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(binDir, "ffmpeg"), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir)

	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1")
		return cmd
	}
	t.Cleanup(func() { commandContext = original })

	probe := ProbeTranscoder(context.Background(), "ffmpeg")
	if !probe.Available || probe.Version != "6.1.1" {
		t.Fatalf("unexpected probe: %+v", probe)
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	os.Stdout.WriteString("ffmpeg version 6.1.1-3ubuntu5 Copyright (c) 2000-2023 the FFmpeg developers\n")
	os.Exit(0)
}
