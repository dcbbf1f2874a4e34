package fileutil

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the process-wide logger. It writes to stderr so that generated
// content on stdout stays clean.
var Logger = newLogger()

func newLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "gig",
		Level:  log.InfoLevel,
	})

	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("error").
		Bold(true).
		Foreground(lipgloss.Color("196"))
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("debug").
		Foreground(lipgloss.Color("245"))
	l.SetStyles(styles)
	return l
}

// SetVerbose switches the logger between info and debug level.
func SetVerbose(verbose bool) {
	if verbose {
		Logger.SetLevel(log.DebugLevel)
		return
	}
	Logger.SetLevel(log.InfoLevel)
}

// SetOutput redirects the logger, mostly for tests.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// LogError logs a formatted error message.
func LogError(format string, args ...any) {
	Logger.Error(fmt.Sprintf(format, args...))
}
