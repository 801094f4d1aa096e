// Package profile holds the fixed table of radio voice-file conversion
// profiles.
//
// Each Profile pairs an output extension with the ordered FFmpeg arguments
// that produce it. The registry is built once at package initialisation and
// never mutated; Lookup accepts either the short ID used on the command line
// or the full display name.
package profile
