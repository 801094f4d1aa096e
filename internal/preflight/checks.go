package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"voiceconv/internal/config"
	"voiceconv/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSystemDeps evaluates the external binaries used by voiceconv. FFmpeg
// performs every conversion; FFprobe only backs inspect and output
// verification.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	ffmpeg, ffprobe := "ffmpeg", "ffprobe"
	if cfg != nil {
		ffmpeg = cfg.FFmpegBinary()
		ffprobe = cfg.FFprobeBinary()
	}
	requirements := []deps.Requirement{
		{
			Name:        "FFmpeg",
			Command:     ffmpeg,
			Description: "Required for conversion",
		},
		{
			Name:        "FFprobe",
			Command:     ffprobe,
			Description: "Used by inspect and output verification",
			Optional:    true,
		},
	}
	return deps.CheckBinaries(requirements)
}
