package transcript

import "strings"

// readBracketed consumes a bracket-balanced group starting at the cursor
// and returns the text between the outer brackets. Nested groups do not
// end the read. On failure the cursor does not move.
func (c *cursor) readBracketed() (string, bool) {
	if c.pos >= c.end || c.src[c.pos] != '[' {
		return "", false
	}
	depth := 0
	for i := c.pos; i < c.end; i++ {
		switch c.src[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				inner := c.src[c.pos+1 : i]
				c.pos = i + 1
				return inner, true
			}
		}
	}
	return "", false
}

// splitList splits list text on commas and trims each item.
// Empty text yields a single empty item.
func splitList(inner string) []string {
	items := strings.Split(inner, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}

// list decodes the bracketed list at the cursor.
func (c *cursor) list(section string) ([]string, error) {
	if c.pos >= c.end || c.src[c.pos] != '[' {
		return nil, c.fail(section, "", "expected '['")
	}
	inner, ok := c.readBracketed()
	if !ok {
		return nil, c.fail(section, "", "unbalanced brackets")
	}
	return splitList(inner), nil
}

// unlabeledList decodes the next bracketed list anywhere ahead of the cursor.
func (c *cursor) unlabeledList(section string) ([]string, error) {
	if !c.seek("[") {
		return nil, c.fail(section, "[", "no list found")
	}
	items, err := c.list(section)
	if err != nil {
		return nil, err
	}
	c.skipSpace()
	return items, nil
}

// labeledList finds marker ahead of the cursor and decodes the list after it.
// Whitespace after the list is left for the caller.
func (c *cursor) labeledList(section, marker string) ([]string, error) {
	if !c.seekPast(marker) {
		return nil, c.fail(section, marker, "marker not found")
	}
	c.skipSpace()
	return c.list(section)
}
