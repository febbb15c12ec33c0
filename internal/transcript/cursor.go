package transcript

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/NielsdaWheelz/seedsearch/internal/errors"
)

// snippetLen bounds the text attached to structure errors.
const snippetLen = 48

// cursor is a read position over an immutable transcript.
// end bounds the current window; searches never look past it.
type cursor struct {
	src string
	pos int
	end int
}

func newCursor(src string) *cursor {
	return &cursor{src: src, end: len(src)}
}

// window returns a cursor over [c.pos, end) sharing c's source.
func (c *cursor) window(end int) *cursor {
	return &cursor{src: c.src, pos: c.pos, end: end}
}

func (c *cursor) rest() string {
	return c.src[c.pos:c.end]
}

func (c *cursor) hasPrefix(prefix string) bool {
	return strings.HasPrefix(c.rest(), prefix)
}

// consume advances past prefix if the window starts with it.
func (c *cursor) consume(prefix string) bool {
	if !c.hasPrefix(prefix) {
		return false
	}
	c.pos += len(prefix)
	return true
}

// seek advances to the next occurrence of marker, leaving it unconsumed.
func (c *cursor) seek(marker string) bool {
	i := strings.Index(c.rest(), marker)
	if i < 0 {
		return false
	}
	c.pos += i
	return true
}

// seekPast advances to just after the next occurrence of marker.
func (c *cursor) seekPast(marker string) bool {
	if !c.seek(marker) {
		return false
	}
	c.pos += len(marker)
	return true
}

// skipSpace consumes ASCII spaces, tabs, carriage returns and newlines.
func (c *cursor) skipSpace() {
	for c.pos < c.end {
		switch c.src[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

func (c *cursor) takeWhile(pred func(rune) bool) string {
	start := c.pos
	for c.pos < c.end {
		r, size := utf8.DecodeRuneInString(c.src[c.pos:c.end])
		if !pred(r) {
			break
		}
		c.pos += size
	}
	return c.src[start:c.pos]
}

func (c *cursor) snippet() string {
	s := c.rest()
	if len(s) <= snippetLen {
		return s
	}
	cut := snippetLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// fail builds the structure error for section at the current position.
func (c *cursor) fail(section, marker, reason string) error {
	details := map[string]string{
		"section": section,
		"offset":  strconv.Itoa(c.pos),
		"snippet": c.snippet(),
	}
	if marker != "" {
		details["marker"] = marker
	}
	return errors.NewWithDetails(errors.ETranscriptStructure, section+": "+reason, details)
}
