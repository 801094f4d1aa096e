package preflight

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var commandContext = exec.CommandContext

// TranscoderProbe reports the installed FFmpeg build.
type TranscoderProbe struct {
	Binary    string `json:"binary"`
	Path      string `json:"path,omitempty"`
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
}

// ProbeTranscoder locates binary and reads the first line of its -version
// output. A missing or unresponsive binary yields Available=false.
func ProbeTranscoder(ctx context.Context, binary string) TranscoderProbe {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	probe := TranscoderProbe{Binary: binary}
	path, err := exec.LookPath(binary)
	if err != nil {
		return probe
	}
	probe.Path = path
	probe.Available = true

	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	output, err := commandContext(probeCtx, path, "-hide_banner", "-version").Output()
	if err != nil {
		return probe
	}
	probe.Version = parseVersionLine(string(output))
	return probe
}

// parseVersionLine extracts "6.1.1" from "ffmpeg version 6.1.1-3ubuntu5 Copyright ...".
func parseVersionLine(output string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	fields := strings.Fields(line)
	for i, field := range fields {
		if field == "version" && i+1 < len(fields) {
			version := fields[i+1]
			if idx := strings.IndexAny(version, "-+~"); idx > 0 {
				version = version[:idx]
			}
			return version
		}
	}
	return ""
}

// Detail renders a display-friendly summary for status output.
func (p TranscoderProbe) Detail() string {
	if !p.Available {
		return fmt.Sprintf("%s not found", p.Binary)
	}
	if p.Version == "" {
		return p.Path
	}
	return fmt.Sprintf("%s (version %s)", p.Path, p.Version)
}
