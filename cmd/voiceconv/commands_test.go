package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voiceconv/internal/media/ffprobe"
	"voiceconv/internal/profile"
	"voiceconv/internal/testsupport"
)

func TestProfilesCommandTable(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"profiles"}, "")
	if err != nil {
		t.Fatalf("profiles returned error: %v", err)
	}
	for _, want := range []string{"apx-wav", "mototrbo-mva", ".wav", ".mva", "pcm_mulaw 8000 Hz mono", "Notes:"} {
		requireContains(t, stdout, want)
	}
}

func TestProfilesCommandJSON(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"profiles", "--json"}, "")
	if err != nil {
		t.Fatalf("profiles returned error: %v", err)
	}
	var profiles []profile.Profile
	if err := json.Unmarshal([]byte(stdout), &profiles); err != nil {
		t.Fatalf("decode profiles: %v", err)
	}
	if len(profiles) != 2 || profiles[0].ID != profile.APXWAV || profiles[1].Extension != ".mva" {
		t.Fatalf("unexpected profiles %+v", profiles)
	}
}

func TestInspectCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	file := testsupport.WriteInput(t, "prompt.wav")

	stdout, _, err := runCLI(t, []string{"inspect", file}, env.configPath)
	if err != nil {
		t.Fatalf("inspect returned error: %v", err)
	}
	for _, want := range []string{"Container: wav", "Duration: 1.25s", "Bit rate: 128000 bit/s", "pcm_s16le", "8000"} {
		requireContains(t, stdout, want)
	}
}

func TestInspectCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	file := testsupport.WriteInput(t, "prompt.wav")

	stdout, _, err := runCLI(t, []string{"inspect", file, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("inspect returned error: %v", err)
	}
	result, err := ffprobe.Parse([]byte(stdout))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if result.AudioStreamCount() != 1 {
		t.Fatalf("expected one audio stream, got %d", result.AudioStreamCount())
	}
}

func TestInspectCommandMissingProbe(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("VOICECONV_FFPROBE", "voiceconv-no-such-ffprobe")

	_, stderr, err := runCLI(t, []string{"inspect", "whatever.wav"}, env.configPath)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.HasPrefix(stderr, "ToolNotFound: ") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestInspectCommandProbeFailure(t *testing.T) {
	env := setupCLITestEnv(t)

	_, stderr, err := runCLI(t, []string{"inspect", filepath.Join(env.baseDir, "missing.wav")}, env.configPath)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.HasPrefix(stderr, "ToolExecutionError: ") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
	requireContains(t, stderr, "No such file or directory")
}

func TestStatusCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status returned error: %v", err)
	}
	for _, want := range []string{"== Transcoder ==", "version 6.1.1", "== Dependencies ==", "FFprobe", "Output directory", "read/write ok", "Default profile", profile.APXWAV} {
		requireContains(t, stdout, want)
	}
	if strings.Contains(stdout, "\x1b[") {
		t.Fatalf("expected no ANSI colour in captured output: %q", stdout)
	}
}

func TestStatusCommandJSONReportsMissingTranscoder(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("VOICECONV_FFMPEG", "voiceconv-no-such-ffmpeg")

	stdout, _, err := runCLI(t, []string{"status", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("status returned error: %v", err)
	}
	var snapshot statusSnapshot
	if err := json.Unmarshal([]byte(stdout), &snapshot); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if snapshot.Transcoder.Available {
		t.Fatal("expected transcoder to be unavailable")
	}
	if len(snapshot.Dependencies) != 2 || snapshot.Dependencies[0].Available {
		t.Fatalf("unexpected dependencies %+v", snapshot.Dependencies)
	}
	if !snapshot.Dependencies[1].Available {
		t.Fatalf("expected stubbed ffprobe to be available: %+v", snapshot.Dependencies[1])
	}
	if snapshot.ConfigPath != env.configPath || !snapshot.ConfigExists {
		t.Fatalf("unexpected config path %q (exists=%v)", snapshot.ConfigPath, snapshot.ConfigExists)
	}
}

type recordingRevealer struct {
	dirs []string
	err  error
}

func (r *recordingRevealer) Reveal(_ context.Context, dir string) error {
	r.dirs = append(r.dirs, dir)
	return r.err
}

func stubRevealer(t *testing.T, r *recordingRevealer) {
	t.Helper()
	original := newRevealer
	newRevealer = func() revealer { return r }
	t.Cleanup(func() { newRevealer = original })
}

func TestRevealCommandDefaultsToOutputDir(t *testing.T) {
	env := setupCLITestEnv(t)
	rec := &recordingRevealer{}
	stubRevealer(t, rec)

	stdout, _, err := runCLI(t, []string{"reveal"}, env.configPath)
	if err != nil {
		t.Fatalf("reveal returned error: %v", err)
	}
	if len(rec.dirs) != 1 || rec.dirs[0] != env.cfg.Paths.OutputDir {
		t.Fatalf("unexpected reveal calls %v", rec.dirs)
	}
	requireContains(t, stdout, "Opened "+env.cfg.Paths.OutputDir)
}

func TestRevealCommandSurfacesErrors(t *testing.T) {
	env := setupCLITestEnv(t)
	stubRevealer(t, &recordingRevealer{err: errors.New("xdg-open: no display")})

	_, _, err := runCLI(t, []string{"reveal", env.baseDir}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "no display") {
		t.Fatalf("expected reveal error, got %v", err)
	}
}

func TestConfigInitCommand(t *testing.T) {
	setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "voiceconv.toml")

	stdout, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init returned error: %v", err)
	}
	requireContains(t, stdout, "Wrote sample configuration to "+target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file: %v", err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("overwrite returned error: %v", err)
	}
}

func TestConfigValidateCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate returned error: %v", err)
	}
	requireContains(t, stdout, "Config path: "+env.configPath)
	requireContains(t, stdout, "Configuration valid")

	broken := filepath.Join(env.baseDir, "broken.toml")
	if err := os.WriteFile(broken, []byte("[transcoder]\nffmpeg = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write broken config: %v", err)
	}
	if _, _, err := runCLI(t, []string{"config", "validate"}, broken); err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestLogLevelFlagRejectsUnknownLevel(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"status", "--log-level", "chatty"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestLogsCommandPrintsTrailingLines(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithFileLogging())
	logPath := env.cfg.LogFilePath()
	if err := os.WriteFile(logPath, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	stdout, _, err := runCLI(t, []string{"logs", "-n", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("logs returned error: %v", err)
	}
	if stdout != "two\nthree\n" {
		t.Fatalf("unexpected logs output: %q", stdout)
	}
}

func TestLogsCommandRequiresFileLogging(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"logs"}, env.configPath); err == nil || !strings.Contains(err.Error(), "file logging is disabled") {
		t.Fatalf("expected file logging error, got %v", err)
	}
}

func TestConfigShowCommandPrintsEffectiveValues(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithLoudnorm(false))

	stdout, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show returned error: %v", err)
	}
	requireContains(t, stdout, "# source: "+env.configPath)
	requireContains(t, stdout, "loudnorm = false")
	requireContains(t, stdout, env.cfg.Paths.OutputDir)
}
