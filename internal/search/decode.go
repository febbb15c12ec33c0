package search

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/NielsdaWheelz/seedsearch/internal/errors"
)

// Decode turns raw captured stdout into transcript text.
//
// strict rejects invalid UTF-8 with E_TRANSCRIPT_ENCODING; lossy replaces
// each invalid sequence with U+FFFD. A UTF-8 byte order mark is dropped in
// both modes. CRLF line endings are kept; the parser accepts them.
// ANSI escape sequences are removed.
func Decode(raw, encoding string) (string, error) {
	raw = strings.TrimPrefix(raw, "\ufeff")

	switch encoding {
	case "strict":
		if !utf8.ValidString(raw) {
			return "", errors.NewWithDetails(errors.ETranscriptEncoding, "transcript is not valid UTF-8",
				map[string]string{"offset": fmt.Sprintf("%d", invalidOffset(raw))})
		}
	case "", "lossy":
		decoded, _, err := transform.String(unicode.UTF8.NewDecoder(), raw)
		if err != nil {
			return "", errors.Wrap(errors.ETranscriptEncoding, "failed to decode transcript", err)
		}
		raw = decoded
	default:
		return "", errors.New(errors.EUsage, "unknown encoding "+encoding+"; use strict or lossy")
	}

	return StripANSI(raw), nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
