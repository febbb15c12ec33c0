// Package transcript decodes the console output of a SeedSearch run into
// typed records.
//
// The grammar is a fixed forward-only sequence: every reader advances a
// cursor over the immutable transcript and never re-reads consumed text.
// Parsing is a pure function of its input and is safe for concurrent use.
package transcript

// FloorEntry is a choice offered on a single floor.
// Floor is kept as the digit string printed by the tool.
type FloorEntry struct {
	Floor string   `json:"floor" yaml:"floor"`
	Items []string `json:"items" yaml:"items"`
}

// Record is the decoded section of one seed's run.
type Record struct {
	SeedString     string       `json:"seed_string" yaml:"seed_string"`
	Seed           string       `json:"seed" yaml:"seed"`
	NeowOptions    []string     `json:"neow_options" yaml:"neow_options"`
	Combats        []string     `json:"combats" yaml:"combats"`
	Bosses         []string     `json:"bosses" yaml:"bosses"`
	Events         []string     `json:"events" yaml:"events"`
	TrueMapPath    []string     `json:"true_map_path" yaml:"true_map_path"`
	CardChoices    []FloorEntry `json:"card_choices" yaml:"card_choices"`
	Potions        []FloorEntry `json:"potions" yaml:"potions"`
	CommonRelics   []string     `json:"common_relics" yaml:"common_relics"`
	UncommonRelics []string     `json:"uncommon_relics" yaml:"uncommon_relics"`
	RareRelics     []string     `json:"rare_relics" yaml:"rare_relics"`
	BossRelics     []string     `json:"boss_relics" yaml:"boss_relics"`
	ShopRelics     []string     `json:"shop_relics" yaml:"shop_relics"`

	// Leftover is the unconsumed tail of the record's segment, verbatim.
	Leftover string `json:"leftover" yaml:"leftover"`
}

// Summary is the trailing "<n> seeds found:" list printed after all runs.
type Summary struct {
	Count string   `json:"count" yaml:"count"`
	Seeds []string `json:"seeds" yaml:"seeds"`
}

// Result is the full decoding of a transcript.
type Result struct {
	Records []Record `json:"records" yaml:"records"`

	// Summary is nil when the trailing list is absent or does not match.
	Summary *Summary `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Remainder is the transcript text left after the last record and summary.
	Remainder string `json:"-" yaml:"-"`
}

// Section names reported in the "section" detail of structure errors.
const (
	SectionSeed           = "seed"
	SectionNeowOptions    = "neow_options"
	SectionCombats        = "combats"
	SectionBosses         = "bosses"
	SectionEvents         = "events"
	SectionTrueMapPath    = "true_map_path"
	SectionCardChoices    = "card_choices"
	SectionPotions        = "potions"
	SectionCommonRelics   = "common_relics"
	SectionUncommonRelics = "uncommon_relics"
	SectionRareRelics     = "rare_relics"
	SectionBossRelics     = "boss_relics"
	SectionShopRelics     = "shop_relics"
)

// Literal markers printed by SeedSearch. Any change in the tool's wording
// breaks the grammar.
const (
	markerSeedStart   = "Seed:"
	markerSeed        = "Seed: "
	recordSeparator   = "#####################################"
	markerNeowOptions = "Neow Options:"
	neowFinalOption   = "[ Lose your starting Relic Obtain a random boss Relic ]"
	markerEvents      = "Events:"
	markerTrueMapPath = "True map path:"
	markerCardChoices = "Card choices:"
	markerPotions     = "Potions:"
	markerOtherCards  = "Other cards:"
	markerFloor       = "Floor "
	markerSeedsFound  = " seeds found:"

	markerCommonRelics   = "Raw common relic list:"
	markerUncommonRelics = "Raw uncommon relic list:"
	markerRareRelics     = "Raw rare relic list:"
	markerBossRelics     = "Raw boss relic list:"
	markerShopRelics     = "Raw shop relic list:"
)
