// Package services defines the shared error markers and context helpers used by
// the conversion pipeline and the CLI.
//
// Key responsibilities:
//   - Sentinel markers (ErrInvalidInput, ErrToolNotFound, ErrToolExecution,
//     ErrUnknownProfile, ErrVerification) plus the Failure type that carries a
//     kind and a user-facing message.
//   - Context helpers that stamp correlation identifiers and profile IDs so log
//     lines from one conversion can be grouped.
//
// Classify failures with errors.Is against the markers; render them with
// KindName and the Failure message.
package services
