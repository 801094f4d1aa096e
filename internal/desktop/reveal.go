package desktop

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"strings"
)

// Opener launches an external program with args.
type Opener interface {
	Open(ctx context.Context, program string, args ...string) error
}

type commandOpener struct{}

// NewOpener creates an opener that shells out to the given program.
func NewOpener() Opener {
	return commandOpener{}
}

func (commandOpener) Open(ctx context.Context, program string, args ...string) error {
	cmd := exec.CommandContext(ctx, program, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		invocation := strings.Join(append([]string{program}, args...), " ")
		if detail := strings.TrimSpace(string(output)); detail != "" {
			return fmt.Errorf("%s: %w: %s", invocation, err, detail)
		}
		return fmt.Errorf("%s: %w", invocation, err)
	}
	return nil
}

// Revealer opens directories in the desktop file manager.
type Revealer struct {
	opener Opener
	goos   string
}

// NewRevealer constructs a Revealer for the running platform. A nil opener
// uses NewOpener.
func NewRevealer(opener Opener) *Revealer {
	if opener == nil {
		opener = NewOpener()
	}
	return &Revealer{opener: opener, goos: runtime.GOOS}
}

// Reveal opens dir in the platform file manager after checking it is a
// directory.
func (r *Revealer) Reveal(ctx context.Context, dir string) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return errors.New("reveal: directory required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("reveal: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("reveal: %s is not a directory", dir)
	}
	launch := FileManager(r.goos)
	if len(launch) == 0 {
		return fmt.Errorf("reveal: unsupported platform %q", r.goos)
	}
	args := append(slices.Clone(launch[1:]), dir)
	if err := r.opener.Open(ctx, launch[0], args...); err != nil {
		return fmt.Errorf("reveal: %w", err)
	}
	return nil
}

// FileManager returns the command, without the folder argument, used to open
// folders on goos. explorer.exe exits 1 even after opening a folder, so Windows
// goes through the shell URL handler instead.
func FileManager(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return []string{"xdg-open"}
	default:
		return nil
	}
}
