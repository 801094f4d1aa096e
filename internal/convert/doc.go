// Package convert runs FFmpeg to turn a source audio file into a radio voice
// file for a chosen profile.
//
// A Converter resolves the transcoder binary, validates the request, builds the
// argument list (loudness normalization followed by the profile's own
// arguments) and waits for the process to finish. Failures are
// services.Failure values tagged with ErrToolNotFound, ErrInvalidInput, or
// ErrToolExecution so the CLI can print the kind and the transcoder's own
// diagnostics. Verify optionally probes the produced file with ffprobe and
// checks it against the profile's expected format.
package convert
