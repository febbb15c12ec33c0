package search

import "regexp"

// ansiEscapeRegex matches ANSI escape sequences that java loggers emit
// when stdout looks like a terminal:
// - CSI sequences: ESC [ ... (parameters) ... (intermediate bytes) ... final byte
// - OSC sequences: ESC ] ... ST (where ST is ESC \ or BEL)
// - DCS, PM, APC sequences
// - Single-character escapes and a lone trailing ESC
var ansiEscapeRegex = regexp.MustCompile(
	`\x1b\[[0-9;:<=>?]*[ -/]*[@-~]` +
		`|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)?` +
		`|\x1b[PX^_][^\x1b]*\x1b\\` +
		`|\x1b[@-_]` +
		`|\x1b.` +
		`|\x1b\[?$`,
)

// StripANSI removes ANSI escape sequences from s.
// Input without escapes is returned unchanged.
func StripANSI(s string) string {
	if s == "" {
		return s
	}
	return ansiEscapeRegex.ReplaceAllString(s, "")
}
