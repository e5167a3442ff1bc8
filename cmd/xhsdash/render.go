package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"xhsdash/internal/views"
)

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"
)

const detailLabelWidth = 14

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func renderSections(out io.Writer, sections []views.Section, colorize bool) {
	for i, section := range sections {
		if i > 0 {
			fmt.Fprintln(out)
		}
		for _, line := range renderSectionHeader(section.Title, colorize) {
			fmt.Fprintln(out, line)
		}
		for _, field := range section.Fields {
			fmt.Fprintf(out, "  %-*s %s\n", detailLabelWidth, field.Label+":", field.Value)
		}
	}
}

// renderWatchStamp separates successive watch-mode refreshes.
func renderWatchStamp(out io.Writer, interval time.Duration) {
	fmt.Fprintf(out, "--- refreshed %s (every %s, Ctrl-C to stop)\n",
		time.Now().Format("15:04:05"), interval)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
