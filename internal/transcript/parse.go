package transcript

import "unicode"

// Parse decodes every record in text and returns them in transcript order
// along with the unconsumed tail. A transcript without "Seed:" yields no
// records and no error. A record that starts but does not complete fails
// the whole parse.
func Parse(text string) ([]Record, string, error) {
	res, err := ParseTranscript(text)
	if err != nil {
		return nil, "", err
	}
	return res.Records, res.Remainder, nil
}

// ParseTranscript is Parse, additionally keeping the trailing seeds-found list.
func ParseTranscript(text string) (Result, error) {
	c := newCursor(text)
	res := Result{Records: []Record{}}

	if !c.seek(markerSeedStart) {
		res.Remainder = text
		return res, nil
	}

	for {
		rec, ok, err := c.nextRecord()
		if err != nil {
			return Result{}, err
		}
		if !ok {
			break
		}
		res.Records = append(res.Records, rec)
		c.skipSpace()
	}

	res.Summary = c.seedsFound()
	res.Remainder = c.rest()
	return res, nil
}

// seedsFound matches `<digits> seeds found: [seeds]`. A missing or
// malformed summary returns nil and leaves the cursor untouched.
func (c *cursor) seedsFound() *Summary {
	start := c.pos
	count := c.takeWhile(unicode.IsDigit)
	if count == "" || !c.consume(markerSeedsFound) {
		c.pos = start
		return nil
	}
	c.skipSpace()
	inner, ok := c.readBracketed()
	if !ok {
		c.pos = start
		return nil
	}
	return &Summary{Count: count, Seeds: splitList(inner)}
}
