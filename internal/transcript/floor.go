package transcript

import (
	"strings"
	"unicode"
)

// floorEntry reads `Floor <digits>: [items]`. On failure the cursor does not move.
func (c *cursor) floorEntry() (FloorEntry, bool) {
	start := c.pos
	if !c.consume(markerFloor) {
		return FloorEntry{}, false
	}
	label := c.takeWhile(unicode.IsDigit)
	if label == "" || !c.consume(": ") {
		c.pos = start
		return FloorEntry{}, false
	}
	inner, ok := c.readBracketed()
	if !ok {
		c.pos = start
		return FloorEntry{}, false
	}
	return FloorEntry{Floor: label, Items: splitList(inner)}, true
}

// floorGroup reads the floor entries between lead and trail. trail bounds
// the window and is left unconsumed. Text in the window that is not a
// floor entry ends the group and is dropped.
func (c *cursor) floorGroup(section, lead, trail string) ([]FloorEntry, error) {
	if !c.seekPast(lead) {
		return nil, c.fail(section, lead, "marker not found")
	}
	c.skipSpace()

	n := strings.Index(c.rest(), trail)
	if n < 0 {
		return nil, c.fail(section, trail, "closing marker not found")
	}

	w := c.window(c.pos + n)
	entries := []FloorEntry{}
	for {
		entry, ok := w.floorEntry()
		if !ok {
			break
		}
		entries = append(entries, entry)
		w.skipSpace()
	}

	c.pos += n
	return entries, nil
}
