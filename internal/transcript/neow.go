package transcript

import "strings"

// neowOptions reads the options printed after "Neow Options:" up to the
// fixed final option. Options are split on ']' without tracking depth, so
// this reader is deliberately not bracket-balanced. The final option itself
// is consumed but not returned.
func (c *cursor) neowOptions() ([]string, error) {
	if !c.seekPast(markerNeowOptions) {
		return nil, c.fail(SectionNeowOptions, markerNeowOptions, "marker not found")
	}
	c.skipSpace()

	n := strings.Index(c.rest(), neowFinalOption)
	if n < 0 {
		return nil, c.fail(SectionNeowOptions, neowFinalOption, "final option not found")
	}
	captured := c.rest()[:n]
	c.pos += n + len(neowFinalOption)
	c.skipSpace()

	return splitNeowOptions(captured), nil
}

func splitNeowOptions(s string) []string {
	options := []string{}
	for _, piece := range strings.Split(s, "]") {
		piece = strings.TrimSpace(piece)
		piece = strings.TrimLeft(piece, "[")
		piece = strings.TrimSpace(piece)
		if piece != "" {
			options = append(options, piece)
		}
	}
	return options
}
