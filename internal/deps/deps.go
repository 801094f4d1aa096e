package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"voiceconv/internal/services"
)

// Requirement defines an external dependency voiceconv relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Path        string `json:"path,omitempty"`
	Description string `json:"description,omitempty"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Detail      string `json:"detail,omitempty"`
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		resolved, err := ResolveBinary(cmd)
		if err != nil {
			status.Available = false
			status.Detail = detailFor(cmd)
			results = append(results, status)
			continue
		}
		status.Path = resolved
		status.Available = true
		results = append(results, status)
	}
	return results
}

// ResolveBinary locates command on the search path (or validates it when it is
// a path) and returns the resolved location. Failures wrap
// services.ErrToolNotFound.
func ResolveBinary(command string) (string, error) {
	cmd := strings.TrimSpace(command)
	if cmd == "" {
		return "", services.Wrap(services.ErrToolNotFound, "resolve binary", detailFor(cmd), nil)
	}
	resolved, err := exec.LookPath(cmd)
	if err != nil {
		return "", services.Wrap(services.ErrToolNotFound, "resolve binary", detailFor(cmd), err)
	}
	return resolved, nil
}

func detailFor(cmd string) string {
	if cmd == "" {
		return "command not configured"
	}
	return fmt.Sprintf("binary %q not found", cmd)
}
