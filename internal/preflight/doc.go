// Package preflight provides readiness checks for the external binaries and
// filesystem paths voiceconv depends on.
//
// The CLI "voiceconv status" command renders these checks; "voiceconv convert"
// relies on the converter's own lookup instead, so a failing check never blocks
// a conversion that would otherwise succeed.
package preflight
