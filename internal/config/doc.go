// Package config loads, normalizes, and validates voiceconv configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads an optional .env file, and honours
// environment fallbacks such as VOICECONV_FFMPEG. The Config type centralizes
// every knob the CLI needs: transcoder binaries, loudness normalization,
// default output folder and profile, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
