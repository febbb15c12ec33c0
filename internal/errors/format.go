// Package errors provides error formatting for seedsearch CLI output.
package errors

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// PrintOptions controls error output formatting.
type PrintOptions struct {
	// Verbose enables detailed error output with more context keys and longer tails.
	Verbose bool

	// Tailer provides the last lines of a saved transcript.
	// If nil, PrintWithOptions reads the transcript file directly (bounded I/O).
	Tailer func(path string, maxLines int) ([]string, error)
}

// Context key whitelist (default mode, in order)
var defaultContextKeys = []string{
	"op",
	"section",
	"marker",
	"offset",
	"snippet",
	"path",
	"command",
	"exit_code",
	"timed_out",
	"transcript",
}

// Additional context keys for verbose mode
var verboseContextKeys = []string{
	"op",
	"section",
	"marker",
	"offset",
	"snippet",
	"path",
	"home",
	"java",
	"mod_the_spire",
	"command",
	"dir",
	"exit_code",
	"timed_out",
	"duration",
	"duration_ms",
	"stdout_bytes",
	"stderr",
	"transcript",
	"hint",
}

// Truncation limits
const (
	defaultMaxLines = 20
	defaultMaxChars = 8 * 1024 // 8 KB
	verboseMaxLines = 100
	verboseMaxChars = 64 * 1024 // 64 KB

	maxValueLen      = 256 // Max chars for single-line context values
	maxExtraValueLen = 128 // Max chars for extra section values
	maxOutputLineLen = 512 // Max chars per line in output blocks
)

// Format formats an error for display without I/O.
// Returns the formatted string ready for printing.
func Format(err error, opts PrintOptions) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	se, ok := AsSearchError(err)
	if !ok {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("error_code: ")
	sb.WriteString(string(se.Code))
	sb.WriteString("\n")

	sb.WriteString(se.Msg)
	sb.WriteString("\n")

	sb.WriteString("\n")

	contextKeys := defaultContextKeys
	if opts.Verbose {
		contextKeys = verboseContextKeys
	}

	printedKeys := make(map[string]bool)

	for _, key := range contextKeys {
		if se.Details == nil {
			continue
		}
		val, ok := se.Details[key]
		if !ok || val == "" {
			continue
		}
		// hint is printed separately at the end
		if key == "hint" {
			continue
		}
		printedKeys[key] = true
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(sanitizeValue(val, maxValueLen))
		sb.WriteString("\n")
	}

	if opts.Verbose && se.Details != nil {
		var extraKeys []string
		for key := range se.Details {
			if !printedKeys[key] && key != "hint" {
				extraKeys = append(extraKeys, key)
			}
		}
		if len(extraKeys) > 0 {
			sort.Strings(extraKeys)
			sb.WriteString("\nextra:\n")
			for _, key := range extraKeys {
				val := se.Details[key]
				if val == "" {
					continue
				}
				sb.WriteString("  ")
				sb.WriteString(key)
				sb.WriteString(": ")
				sb.WriteString(sanitizeValue(val, maxExtraValueLen))
				sb.WriteString("\n")
			}
		}
	}

	if se.Details != nil {
		if hint, ok := se.Details["hint"]; ok && hint != "" {
			sb.WriteString("\nhint: ")
			sb.WriteString(hint)
			sb.WriteString("\n")
		}
	}

	for _, try := range deriveTryLines(se) {
		sb.WriteString("try: ")
		sb.WriteString(try)
		sb.WriteString("\n")
	}

	return sb.String()
}

// PrintWithOptions writes a formatted error to w with the given options.
// May perform bounded I/O to read a saved transcript for transcript and launch failures.
func PrintWithOptions(w io.Writer, err error, opts PrintOptions) {
	if err == nil {
		return
	}

	output := Format(err, opts)

	se, ok := AsSearchError(err)
	if ok && hasTranscriptTail(se) {
		path := se.Details["transcript"]
		maxLines := defaultMaxLines
		maxChars := defaultMaxChars
		if opts.Verbose {
			maxLines = verboseMaxLines
			maxChars = verboseMaxChars
		}

		var lines []string
		var tailErr error
		if opts.Tailer != nil {
			lines, tailErr = opts.Tailer(path, maxLines)
		} else {
			lines, tailErr = readTail(path, maxLines, maxChars)
		}

		if tailErr == nil && len(lines) > 0 {
			output = insertOutputBlock(output, lines, maxLines)
		}
	}

	_, _ = io.WriteString(w, output)
}

// sanitizeValue renders a value on a single line:
// trailing whitespace trimmed, CRLF normalized, newlines escaped, truncated to maxLen.
func sanitizeValue(val string, maxLen int) string {
	val = strings.TrimRight(val, " \t\r\n")
	val = strings.ReplaceAll(val, "\r\n", "\n")
	val = strings.ReplaceAll(val, "\n", "\\n")

	if len(val) > maxLen {
		return val[:maxLen] + "…"
	}

	return val
}

// hasTranscriptTail reports whether the error points at a saved transcript worth tailing.
func hasTranscriptTail(se *SearchError) bool {
	if se.Details == nil || se.Details["transcript"] == "" {
		return false
	}
	switch se.Code {
	case ETranscriptStructure, ELaunchFailed:
		return true
	}
	return false
}

// readTail reads the last maxLines lines from a file, up to maxChars total.
func readTail(path string, maxLines, maxChars int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := stat.Size()
	if size == 0 {
		return nil, nil
	}

	readSize := int64(maxChars)
	if readSize > size {
		readSize = size
	}

	if _, err := f.Seek(size-readSize, 0); err != nil {
		return nil, err
	}

	var allLines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > maxOutputLineLen {
			line = line[:maxOutputLineLen] + "…"
		}
		line = strings.TrimRight(line, " \t\r")
		allLines = append(allLines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(allLines) > maxLines {
		return allLines[len(allLines)-maxLines:], nil
	}

	return allLines, nil
}

// insertOutputBlock inserts the transcript tail block before the hint line.
func insertOutputBlock(output string, lines []string, maxLines int) string {
	var block strings.Builder
	if len(lines) >= maxLines {
		block.WriteString(fmt.Sprintf("\ntranscript (last %d lines):\n", len(lines)))
	} else {
		block.WriteString(fmt.Sprintf("\ntranscript (%d lines):\n", len(lines)))
	}
	for _, line := range lines {
		block.WriteString("  ")
		block.WriteString(line)
		block.WriteString("\n")
	}

	if idx := strings.Index(output, "\nhint: "); idx >= 0 {
		return output[:idx] + block.String() + output[idx:]
	}
	if idx := strings.Index(output, "\ntry: "); idx >= 0 {
		return output[:idx] + block.String() + output[idx:]
	}
	return output + block.String()
}

// deriveTryLines returns actionable suggestions based on error code.
func deriveTryLines(se *SearchError) []string {
	if se == nil {
		return nil
	}

	var lines []string

	switch se.Code {
	case ETranscriptStructure:
		if se.Details != nil {
			if path := se.Details["transcript"]; path != "" {
				lines = append(lines, fmt.Sprintf("seedsearch parse %s", path))
			}
		}
	case EInvalidHome, EInvalidJava, EInvalidModTheSpire, ENoSearchConfig:
		lines = append(lines, "seedsearch doctor")
	case EInvalidSearchConfig:
		lines = append(lines, "seedsearch config show")
	}

	return lines
}

// FormatHint formats a hint for output.
// If hint already starts with "hint:", returns as-is.
func FormatHint(hint string) string {
	if hint == "" {
		return ""
	}
	if strings.HasPrefix(hint, "hint:") {
		return hint
	}
	return "hint: " + hint
}

// GetHint extracts the hint from an error's details, if present.
func GetHint(err error) string {
	se, ok := AsSearchError(err)
	if !ok || se.Details == nil {
		return ""
	}
	return se.Details["hint"]
}
