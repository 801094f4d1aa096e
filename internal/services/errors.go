package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrToolNotFound   = errors.New("tool not found")
	ErrToolExecution  = errors.New("tool execution error")
	ErrUnknownProfile = errors.New("unknown profile")
	ErrVerification   = errors.New("verification failed")
)

// Failure is a structured conversion failure: a kind marker plus the message
// shown to the user. Error returns Message verbatim so transcoder diagnostics
// reach the caller untouched.
type Failure struct {
	Kind    error
	Op      string
	Message string
	Err     error
}

// Fail builds a Failure for the given marker.
func Fail(kind error, op, message string) *Failure {
	return &Failure{Kind: kind, Op: op, Message: message}
}

// FailWith builds a Failure that also records the underlying cause.
func FailWith(kind error, op, message string, err error) *Failure {
	return &Failure{Kind: kind, Op: op, Message: message, Err: err}
}

func (f *Failure) Error() string {
	if f == nil {
		return ""
	}
	if msg := strings.TrimSpace(f.Message); msg != "" {
		return f.Message
	}
	if f.Kind != nil {
		return f.Kind.Error()
	}
	return "conversion failure"
}

// Is reports whether target is the failure's kind marker.
func (f *Failure) Is(target error) bool {
	return f != nil && f.Kind != nil && target == f.Kind
}

func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Err
}

// Wrap builds an error message that includes operation context while tagging it
// with the provided marker. The marker should be one of the sentinels above.
func Wrap(marker error, op, message string, err error) error {
	detail := buildDetail(op, message)
	if marker == nil {
		marker = ErrToolExecution
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// KindName maps an error to its display kind. Unclassified errors return "Error".
func KindName(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "InvalidInput"
	case errors.Is(err, ErrToolNotFound):
		return "ToolNotFound"
	case errors.Is(err, ErrToolExecution):
		return "ToolExecutionError"
	case errors.Is(err, ErrUnknownProfile):
		return "UnknownProfile"
	case errors.Is(err, ErrVerification):
		return "VerificationFailed"
	default:
		return "Error"
	}
}

// Message returns the user-facing text for err: the Failure message when err
// carries one, otherwise err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Error()
	}
	return err.Error()
}

func buildDetail(op, message string) string {
	parts := make([]string, 0, 2)
	if op = strings.TrimSpace(op); op != "" {
		parts = append(parts, op)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
