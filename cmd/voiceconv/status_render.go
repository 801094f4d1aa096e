package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const ansiReset = "\x1b[0m"

type statusStyle struct {
	label string
	color string
}

var statusStyles = map[statusKind]statusStyle{
	statusInfo:  {label: "INFO", color: "\x1b[34m"},
	statusOK:    {label: "OK", color: "\x1b[32m"},
	statusWarn:  {label: "WARN", color: "\x1b[33m"},
	statusError: {label: "ERROR", color: "\x1b[31m"},
}

const (
	statusLabelWidth = 18
	statusIndent     = "  "
)

func styleFor(kind statusKind) statusStyle {
	if style, ok := statusStyles[kind]; ok {
		return style
	}
	return statusStyles[statusInfo]
}

func paint(text, color string, colorize bool) string {
	if !colorize || color == "" {
		return text
	}
	return color + text + ansiReset
}

// renderStatusLine formats "  Label:   [KIND] message" with the label padded
// so that status columns line up within a section.
func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	style := styleFor(kind)
	var b strings.Builder
	fmt.Fprintf(&b, "%s%-*s [%s]", statusIndent, statusLabelWidth, label+":", style.label)
	if message != "" {
		b.WriteString(" ")
		b.WriteString(message)
	}
	return paint(b.String(), style.color, colorize)
}

func renderSectionHeader(title string, colorize bool) []string {
	heading := "== " + strings.TrimSpace(title) + " =="
	color := statusStyles[statusInfo].color
	return []string{
		paint(heading, color, colorize),
		paint(strings.Repeat("-", len(heading)), color, colorize),
	}
}

// shouldColorize reports whether writer is an interactive terminal and
// NO_COLOR is unset.
func shouldColorize(writer io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
