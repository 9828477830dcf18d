package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// checkStatus grades one line of `config validate`.
type checkStatus int

const (
	checkInfo checkStatus = iota
	checkOK
	checkWarn
	checkFailed
)

func (s checkStatus) String() string {
	switch s {
	case checkOK:
		return "OK"
	case checkWarn:
		return "WARN"
	case checkFailed:
		return "FAIL"
	default:
		return "INFO"
	}
}

const checkLabelWidth = 16

var (
	checkStyles = map[checkStatus]lipgloss.Style{
		checkInfo:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		checkOK:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		checkWarn:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		checkFailed: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
	detailTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	detailRuleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func renderCheck(c configCheck, colorize bool) string {
	line := fmt.Sprintf("  %-*s [%s]", checkLabelWidth, c.label+":", c.status)
	if c.message != "" {
		line += " " + c.message
	}
	if !colorize {
		return line
	}
	return checkStyles[c.status].Render(line)
}

// renderDetailTitle underlines a source title for `show`.
func renderDetailTitle(title string, colorize bool) []string {
	title = strings.TrimSpace(title)
	rule := strings.Repeat("─", max(lipgloss.Width(title), 1))
	if !colorize {
		return []string{title, rule}
	}
	return []string{detailTitleStyle.Render(title), detailRuleStyle.Render(rule)}
}

// colorEnabled is true only when out is a terminal.
func colorEnabled(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
