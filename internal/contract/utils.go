package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Language share label constants.
const (
	DominantValue = "Dominant" // half the attributed changes or more
	MajorValue    = "Major"    // a fifth or more
	RegularValue  = "Regular"  // a twentieth or more
	MinorValue    = "Minor"    // everything else
)

// Color variables for console output.
var (
	DominantColor = color.New(color.FgGreen, color.Bold)
	MajorColor    = color.New(color.FgCyan, color.Bold)
	RegularColor  = color.New(color.FgYellow)
	MinorColor    = color.New(color.FgWhite)
)

// GetPlainLabel returns a plain text label for a language's share of the
// attributed changes. This is the core logic used for JSON-free table output.
func GetPlainLabel(percent float64) string {
	switch {
	case percent >= 50:
		return DominantValue
	case percent >= 20:
		return MajorValue
	case percent >= 5:
		return RegularValue
	default:
		return MinorValue
	}
}

// GetColorLabel returns a colored share label for console output.
func GetColorLabel(percent float64) string {
	text := GetPlainLabel(percent)

	switch text {
	case DominantValue:
		return DominantColor.Sprint(text)
	case MajorValue:
		return MajorColor.Sprint(text)
	case RegularValue:
		return RegularColor.Sprint(text)
	default: // "Minor"
		return MinorColor.Sprint(text)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for response
// cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".devpulse_cache.db"
	}
	return filepath.Join(homeDir, ".devpulse_cache.db")
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName truncates a repository or language name to a maximum width
// with an ellipsis suffix. Requires maxWidth > 3 so there is room for both
// content and the ellipsis.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}
