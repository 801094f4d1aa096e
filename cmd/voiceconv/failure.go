package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"voiceconv/internal/services"
)

// reportedError marks a failure that has already been written to the
// command's output. main exits non-zero without printing it again.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

type failurePayload struct {
	Status    string `json:"status"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// formatFailure renders err as "<Kind>: <message>".
func formatFailure(err error) string {
	return fmt.Sprintf("%s: %s", services.KindName(err), services.Message(err))
}

// reportFailure writes err to stderr (or stdout as JSON) and returns a
// reportedError so the exit status is non-zero.
func reportFailure(cmd *cobra.Command, jsonOutput bool, requestID string, err error) error {
	if jsonOutput {
		payload := failurePayload{
			Status:    "error",
			Kind:      services.KindName(err),
			Message:   services.Message(err),
			RequestID: requestID,
		}
		if encodeErr := writeJSON(cmd, payload); encodeErr != nil {
			return encodeErr
		}
		return &reportedError{err: err}
	}
	fmt.Fprintln(cmd.ErrOrStderr(), formatFailure(err))
	return &reportedError{err: err}
}
