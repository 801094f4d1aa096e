// Package logs reads voiceconv's rotating log file for the "voiceconv logs"
// command: the last N lines, and optionally new lines as they are appended.
package logs
