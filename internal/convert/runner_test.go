package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"voiceconv/internal/profile"
	"voiceconv/internal/services"
)

func stubCommand(t *testing.T, mode string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cmdArgs := append([]string{"-test.run=TestHelperProcess", "--"}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cmdArgs...)
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "FFMPEG_HELPER_MODE="+mode)
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})
}

func TestExecRunnerCapturesStderr(t *testing.T) {
	stubCommand(t, "fail")
	stderr, err := NewExecRunner().Run(context.Background(), "ffmpeg", []string{"-i", "in.wav", "out.wav"})
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
	if strings.TrimSpace(string(stderr)) != "in.wav: Invalid data found when processing input" {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestConvertExitWithDiagnostics(t *testing.T) {
	stubCommand(t, "fail")
	conv := New(WithLookPath(foundAt("ffmpeg")))
	input := writeInput(t)
	_, err := conv.Convert(context.Background(), Request{
		InputPath: input,
		OutputDir: t.TempDir(),
		BaseName:  "prompt",
		Profile:   mustProfile(t, profile.APXWAV),
	})
	if !errors.Is(err, services.ErrToolExecution) {
		t.Fatalf("expected ErrToolExecution, got %v", err)
	}
	if want := input + ": Invalid data found when processing input"; err.Error() != want {
		t.Fatalf("message %q, want %q", err.Error(), want)
	}
}

func TestConvertSilentExitUsesPlaceholder(t *testing.T) {
	stubCommand(t, "silent")
	conv := New(WithLookPath(foundAt("ffmpeg")))
	_, err := conv.Convert(context.Background(), Request{
		InputPath: writeInput(t),
		OutputDir: t.TempDir(),
		BaseName:  "prompt",
		Profile:   mustProfile(t, profile.MotoTRBOMVA),
	})
	if !errors.Is(err, services.ErrToolExecution) {
		t.Fatalf("expected ErrToolExecution, got %v", err)
	}
	if err.Error() != UnknownErrorMessage {
		t.Fatalf("expected placeholder message, got %q", err.Error())
	}
}

func TestConvertTwiceOverwritesOutput(t *testing.T) {
	stubCommand(t, "success")
	conv := New(WithLookPath(foundAt("ffmpeg")))
	outDir := t.TempDir()
	req := Request{
		InputPath: writeInput(t),
		OutputDir: outDir,
		BaseName:  "prompt",
		Profile:   mustProfile(t, profile.MotoTRBOMVA),
	}

	first, err := conv.Convert(context.Background(), req)
	if err != nil {
		t.Fatalf("first Convert returned error: %v", err)
	}
	second, err := conv.Convert(context.Background(), req)
	if err != nil {
		t.Fatalf("second Convert returned error: %v", err)
	}
	if first.OutputPath != second.OutputPath {
		t.Fatalf("output paths differ: %q vs %q", first.OutputPath, second.OutputPath)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "prompt.mva" {
		t.Fatalf("expected a single prompt.mva, got %v", entries)
	}
	content, err := os.ReadFile(second.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(content) != "converted\n" {
		t.Fatalf("expected overwritten content, got %q", content)
	}
}

func TestConvertStartFailureFromExec(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "ffmpeg")
	conv := New(WithLookPath(foundAt(missing)))
	_, err := conv.Convert(context.Background(), Request{
		InputPath: writeInput(t),
		OutputDir: t.TempDir(),
		BaseName:  "prompt",
		Profile:   mustProfile(t, profile.APXWAV),
	})
	if !errors.Is(err, services.ErrToolExecution) {
		t.Fatalf("expected ErrToolExecution, got %v", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Fatalf("expected start error text, got %q", err.Error())
	}
}

func TestConvertWithStubTranscoderOnPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}
	binDir := t.TempDir()
	script := `#!/bin/sh
for last; do :; done
if [ "$STUB_FFMPEG_MODE" = "fail" ]; then
  echo "stub failure" >&2
  exit 1
fi
printf 'RIFF' > "$last"
`
	if err := os.WriteFile(filepath.Join(binDir, "ffmpeg"), []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	outDir := t.TempDir()
	conv := New()
	req := Request{
		InputPath: writeInput(t),
		OutputDir: outDir,
		BaseName:  "welcome",
		Profile:   mustProfile(t, "APX CPS-ready WAV (8 kHz, 16-bit PCM, mono)"),
	}

	result, err := conv.Convert(context.Background(), req)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if result.OutputPath != filepath.Join(outDir, "welcome.wav") {
		t.Fatalf("unexpected output path %q", result.OutputPath)
	}
	if _, err := os.Stat(result.OutputPath); err != nil {
		t.Fatalf("expected output file: %v", err)
	}

	t.Setenv("STUB_FFMPEG_MODE", "fail")
	_, err = conv.Convert(context.Background(), req)
	if !errors.Is(err, services.ErrToolExecution) || err.Error() != "stub failure" {
		t.Fatalf("expected stub failure, got %v", err)
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}
	switch os.Getenv("FFMPEG_HELPER_MODE") {
	case "fail":
		input := ""
		for i, arg := range args {
			if arg == "-i" && i+1 < len(args) {
				input = args[i+1]
			}
		}
		fmt.Fprintf(os.Stderr, "%s: Invalid data found when processing input\n", input)
		os.Exit(1)
	case "silent":
		os.Exit(1)
	case "success":
		if len(args) == 0 {
			os.Exit(2)
		}
		if err := os.WriteFile(args[len(args)-1], []byte("converted\n"), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	default:
		os.Exit(0)
	}
}
