package transcript

import (
	"strings"
	"unicode"
)

// nextRecord reads one record from the cursor. ok is false when the next
// segment does not begin with "Seed: ", which ends the record sequence.
// Once a segment begins with "Seed: " any failure is returned as an error.
func (c *cursor) nextRecord() (rec Record, ok bool, err error) {
	segEnd, next := c.end, c.end
	if i := strings.Index(c.rest(), recordSeparator); i >= 0 {
		segEnd = c.pos + i
		next = segEnd + len(recordSeparator)
	}

	seg := c.window(segEnd)
	if !seg.hasPrefix(markerSeed) {
		return Record{}, false, nil
	}

	rec, err = seg.assemble()
	if err != nil {
		return Record{}, true, err
	}
	c.pos = next
	return rec, true, nil
}

// assemble decodes a single record segment in the fixed section order.
func (c *cursor) assemble() (Record, error) {
	var rec Record
	var err error

	if err = c.seedHeader(&rec); err != nil {
		return Record{}, err
	}
	if rec.NeowOptions, err = c.neowOptions(); err != nil {
		return Record{}, err
	}
	if rec.Combats, err = c.unlabeledList(SectionCombats); err != nil {
		return Record{}, err
	}
	if rec.Bosses, err = c.unlabeledList(SectionBosses); err != nil {
		return Record{}, err
	}
	if rec.Events, err = c.labeledList(SectionEvents, markerEvents); err != nil {
		return Record{}, err
	}
	c.skipSpace()
	if rec.TrueMapPath, err = c.labeledList(SectionTrueMapPath, markerTrueMapPath); err != nil {
		return Record{}, err
	}
	c.skipSpace()
	if rec.CardChoices, err = c.floorGroup(SectionCardChoices, markerCardChoices, markerPotions); err != nil {
		return Record{}, err
	}
	if rec.Potions, err = c.floorGroup(SectionPotions, markerPotions, markerOtherCards); err != nil {
		return Record{}, err
	}

	relics := []struct {
		section string
		marker  string
		dst     *[]string
	}{
		{SectionCommonRelics, markerCommonRelics, &rec.CommonRelics},
		{SectionUncommonRelics, markerUncommonRelics, &rec.UncommonRelics},
		{SectionRareRelics, markerRareRelics, &rec.RareRelics},
		{SectionBossRelics, markerBossRelics, &rec.BossRelics},
		{SectionShopRelics, markerShopRelics, &rec.ShopRelics},
	}
	for _, r := range relics {
		if *r.dst, err = c.labeledList(r.section, r.marker); err != nil {
			return Record{}, err
		}
	}

	rec.Leftover = c.rest()
	return rec, nil
}

// seedHeader reads `Seed: <seed string> (<digits>)`.
func (c *cursor) seedHeader(rec *Record) error {
	if !c.consume(markerSeed) {
		return c.fail(SectionSeed, markerSeed, "marker not found")
	}
	rec.SeedString = c.takeWhile(func(r rune) bool { return !unicode.IsSpace(r) })
	if !c.consume(" (") {
		return c.fail(SectionSeed, "", "expected ' (' after seed")
	}
	rec.Seed = c.takeWhile(unicode.IsDigit)
	if rec.Seed == "" {
		return c.fail(SectionSeed, "", "expected numeric seed")
	}
	if !c.consume(")") {
		return c.fail(SectionSeed, "", "expected ')' after numeric seed")
	}
	c.skipSpace()
	return nil
}
