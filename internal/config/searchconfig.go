// Package config loads the SeedSearch searchConfig.json and the seedsearch user config.
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/NielsdaWheelz/seedsearch/internal/errors"
	"github.com/NielsdaWheelz/seedsearch/internal/fs"
	"github.com/NielsdaWheelz/seedsearch/internal/transcript"
)

// SearchConfig mirrors the SeedSearch mod's searchConfig.json.
// Field names follow the mod's camelCase keys.
type SearchConfig struct {
	AscensionLevel  int     `json:"ascensionLevel" yaml:"ascensionLevel"`
	PlayerClass     string  `json:"playerClass" yaml:"playerClass"`
	StartSeed       int64   `json:"startSeed" yaml:"startSeed"`
	EndSeed         int64   `json:"endSeed" yaml:"endSeed"`
	Verbose         bool    `json:"verbose" yaml:"verbose"`
	ExitAfterSearch bool    `json:"exitAfterSearch" yaml:"exitAfterSearch"`
	HighestFloor    int     `json:"highestFloor" yaml:"highestFloor"`
	IroncladUnlocks int     `json:"ironcladUnlocks" yaml:"ironcladUnlocks"`
	SilentUnlocks   int     `json:"silentUnlocks" yaml:"silentUnlocks"`
	DefectUnlocks   int     `json:"defectUnlocks" yaml:"defectUnlocks"`
	WatcherUnlocks  int     `json:"watcherUnlocks" yaml:"watcherUnlocks"`
	FirstBoss       int     `json:"firstBoss" yaml:"firstBoss"`
	SecondBoss      int     `json:"secondBoss" yaml:"secondBoss"`
	ThirdBoss       int     `json:"thirdBoss" yaml:"thirdBoss"`
	EliteRoomWeight float64 `json:"eliteRoomWeight" yaml:"eliteRoomWeight"`

	MonsterRoomWeight  float64 `json:"monsterRoomWeight" yaml:"monsterRoomWeight"`
	RestRoomWeight     float64 `json:"restRoomWeight" yaml:"restRoomWeight"`
	ShopRoomWeight     float64 `json:"shopRoomWeight" yaml:"shopRoomWeight"`
	EventRoomWeight    float64 `json:"eventRoomWeight" yaml:"eventRoomWeight"`
	WingBootsThreshold float64 `json:"wingBootsThreshold" yaml:"wingBootsThreshold"`

	RelicsToBuy      []string `json:"relicsToBuy" yaml:"relicsToBuy"`
	PotionsToBuy     []string `json:"potionsToBuy" yaml:"potionsToBuy"`
	CardsToBuy       []string `json:"cardsToBuy" yaml:"cardsToBuy"`
	BossRelicsToTake []string `json:"bossRelicsToTake" yaml:"bossRelicsToTake"`

	ForceNeowLament             bool `json:"forceNeowLament" yaml:"forceNeowLament"`
	NeowChoice                  int  `json:"neowChoice" yaml:"neowChoice"`
	UseShovel                   bool `json:"useShovel" yaml:"useShovel"`
	SpeedrunPace                bool `json:"speedrunPace" yaml:"speedrunPace"`
	Act4                        bool `json:"act4" yaml:"act4"`
	AlwaysSpawnBottledTornado   bool `json:"alwaysSpawnBottledTornado" yaml:"alwaysSpawnBottledTornado"`
	AlwaysSpawnBottledLightning bool `json:"alwaysSpawnBottledLightning" yaml:"alwaysSpawnBottledLightning"`
	AlwaysSpawnBottledFlame     bool `json:"alwaysSpawnBottledFlame" yaml:"alwaysSpawnBottledFlame"`
	IgnorePandoraCards          bool `json:"ignorePandoraCards" yaml:"ignorePandoraCards"`

	TakeSerpentGold            bool `json:"takeSerpentGold" yaml:"takeSerpentGold"`
	TakeWarpedTongs            bool `json:"takeWarpedTongs" yaml:"takeWarpedTongs"`
	TakeBigFishRelic           bool `json:"takeBigFishRelic" yaml:"takeBigFishRelic"`
	TakeDeadAdventurerFight    bool `json:"takeDeadAdventurerFight" yaml:"takeDeadAdventurerFight"`
	TakeMausoleumRelic         bool `json:"takeMausoleumRelic" yaml:"takeMausoleumRelic"`
	TakeScrapOozeRelic         bool `json:"takeScrapOozeRelic" yaml:"takeScrapOozeRelic"`
	TakeAddictRelic            bool `json:"takeAddictRelic" yaml:"takeAddictRelic"`
	TakeMysteriousSphereFight  bool `json:"takeMysteriousSphereFight" yaml:"takeMysteriousSphereFight"`
	TakeRedMaskAct3            bool `json:"takeRedMaskAct3" yaml:"takeRedMaskAct3"`
	TakeMushroomFight          bool `json:"takeMushroomFight" yaml:"takeMushroomFight"`
	TakeMaskedBanditFight      bool `json:"takeMaskedBanditFight" yaml:"takeMaskedBanditFight"`
	TakeGoldenIdolWithoutCurse bool `json:"takeGoldenIdolWithoutCurse" yaml:"takeGoldenIdolWithoutCurse"`
	TakeGoldenIdolWithCurse    bool `json:"takeGoldenIdolWithCurse" yaml:"takeGoldenIdolWithCurse"`
	TradeGoldenIdolForBloody   bool `json:"tradeGoldenIdolForBloody" yaml:"tradeGoldenIdolForBloody"`
	TakeCursedTome             bool `json:"takeCursedTome" yaml:"takeCursedTome"`
	TradeFaces                 bool `json:"tradeFaces" yaml:"tradeFaces"`
	TakeMindBloomGold          bool `json:"takeMindBloomGold" yaml:"takeMindBloomGold"`
	TakeMindBloomFight         bool `json:"takeMindBloomFight" yaml:"takeMindBloomFight"`
	TakeMindBloomUpgrade       bool `json:"takeMindBloomUpgrade" yaml:"takeMindBloomUpgrade"`
	TradeGoldenIdolForMoney    bool `json:"tradeGoldenIdolForMoney" yaml:"tradeGoldenIdolForMoney"`
	TakePortal                 bool `json:"takePortal" yaml:"takePortal"`
	NumSensoryStoneCards       int  `json:"numSensoryStoneCards" yaml:"numSensoryStoneCards"`
	TakeWindingHallsCurse      bool `json:"takeWindingHallsCurse" yaml:"takeWindingHallsCurse"`
	TakeWindingHallsMadness    bool `json:"takeWindingHallsMadness" yaml:"takeWindingHallsMadness"`
	TakeColosseumFight         bool `json:"takeColosseumFight" yaml:"takeColosseumFight"`
	TakeDrugDealerRelic        bool `json:"takeDrugDealerRelic" yaml:"takeDrugDealerRelic"`
	TakeDrugDealerTransform    bool `json:"takeDrugDealerTransform" yaml:"takeDrugDealerTransform"`
	TakeLibraryCard            bool `json:"takeLibraryCard" yaml:"takeLibraryCard"`
	TakeWeMeetAgainRelic       bool `json:"takeWeMeetAgainRelic" yaml:"takeWeMeetAgainRelic"`

	RequiredAct1Cards   []string `json:"requiredAct1Cards" yaml:"requiredAct1Cards"`
	BannedAct1Cards     []string `json:"bannedAct1Cards" yaml:"bannedAct1Cards"`
	RequiredAct1Relics  []string `json:"requiredAct1Relics" yaml:"requiredAct1Relics"`
	RequiredAct1Potions []string `json:"requiredAct1Potions" yaml:"requiredAct1Potions"`
	RequiredRelics      []string `json:"requiredRelics" yaml:"requiredRelics"`
	RequiredPotions     []string `json:"requiredPotions" yaml:"requiredPotions"`
	RequiredEvents      []string `json:"requiredEvents" yaml:"requiredEvents"`
	RequiredCombats     []string `json:"requiredCombats" yaml:"requiredCombats"`

	MinimumElites    int `json:"minimumElites" yaml:"minimumElites"`
	MaximumElites    int `json:"maximumElites" yaml:"maximumElites"`
	MinimumCombats   int `json:"minimumCombats" yaml:"minimumCombats"`
	MaximumCombats   int `json:"maximumCombats" yaml:"maximumCombats"`
	MinimumRestSites int `json:"minimumRestSites" yaml:"minimumRestSites"`

	ShowNeowOptions   bool `json:"showNeowOptions" yaml:"showNeowOptions"`
	ShowCombats       bool `json:"showCombats" yaml:"showCombats"`
	ShowBosses        bool `json:"showBosses" yaml:"showBosses"`
	ShowBossRelics    bool `json:"showBossRelics" yaml:"showBossRelics"`
	ShowRelics        bool `json:"showRelics" yaml:"showRelics"`
	ShowShopRelics    bool `json:"showShopRelics" yaml:"showShopRelics"`
	ShowShopCards     bool `json:"showShopCards" yaml:"showShopCards"`
	ShowShopPotions   bool `json:"showShopPotions" yaml:"showShopPotions"`
	ShowEvents        bool `json:"showEvents" yaml:"showEvents"`
	ShowCardChoices   bool `json:"showCardChoices" yaml:"showCardChoices"`
	ShowPotions       bool `json:"showPotions" yaml:"showPotions"`
	ShowOtherCards    bool `json:"showOtherCards" yaml:"showOtherCards"`
	ShowRawRelicPools bool `json:"showRawRelicPools" yaml:"showRawRelicPools"`
}

// LoadSearchConfig reads and decodes searchConfig.json at path.
// Returns E_NO_SEARCH_CONFIG if the file does not exist.
// Returns E_INVALID_SEARCH_CONFIG if it is not valid JSON, has a field of
// the wrong type, or has an unknown field.
func LoadSearchConfig(filesystem fs.FS, path string) (SearchConfig, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return SearchConfig{}, errors.NewWithDetails(errors.ENoSearchConfig, "searchConfig.json not found",
				map[string]string{"path": path, "hint": "run the SeedSearch mod once to generate it"})
		}
		return SearchConfig{}, errors.WrapWithDetails(errors.ENoSearchConfig, "failed to read searchConfig.json", err,
			map[string]string{"path": path})
	}

	var cfg SearchConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return SearchConfig{}, errors.WrapWithDetails(errors.EInvalidSearchConfig, "invalid searchConfig.json: "+err.Error(), err,
			map[string]string{"path": path})
	}
	return cfg, nil
}

// sectionFlags maps each transcript section to the searchConfig.json flag
// that makes SeedSearch print it.
var sectionFlags = []struct {
	section string
	flag    string
	enabled func(SearchConfig) bool
}{
	{transcript.SectionNeowOptions, "showNeowOptions", func(c SearchConfig) bool { return c.ShowNeowOptions }},
	{transcript.SectionCombats, "showCombats", func(c SearchConfig) bool { return c.ShowCombats }},
	{transcript.SectionBosses, "showBosses", func(c SearchConfig) bool { return c.ShowBosses }},
	{transcript.SectionEvents, "showEvents", func(c SearchConfig) bool { return c.ShowEvents }},
	{transcript.SectionCardChoices, "showCardChoices", func(c SearchConfig) bool { return c.ShowCardChoices }},
	{transcript.SectionPotions, "showPotions", func(c SearchConfig) bool { return c.ShowPotions }},
	// Bounds the potions section; not a section of its own.
	{"", "showOtherCards", func(c SearchConfig) bool { return c.ShowOtherCards }},
	{transcript.SectionCommonRelics, "showRawRelicPools", func(c SearchConfig) bool { return c.ShowRawRelicPools }},
	{transcript.SectionUncommonRelics, "showRawRelicPools", func(c SearchConfig) bool { return c.ShowRawRelicPools }},
	{transcript.SectionRareRelics, "showRawRelicPools", func(c SearchConfig) bool { return c.ShowRawRelicPools }},
	{transcript.SectionBossRelics, "showRawRelicPools", func(c SearchConfig) bool { return c.ShowRawRelicPools }},
	{transcript.SectionShopRelics, "showRawRelicPools", func(c SearchConfig) bool { return c.ShowRawRelicPools }},
}

// MissingFlags returns the show* flags (plus verbose) that are off but
// required for the transcript to contain every section the parser reads.
// Each flag is listed once, in section order.
func MissingFlags(cfg SearchConfig) []string {
	var missing []string
	if !cfg.Verbose {
		missing = append(missing, "verbose")
	}
	seen := make(map[string]bool)
	for _, sf := range sectionFlags {
		if sf.enabled(cfg) || seen[sf.flag] {
			continue
		}
		seen[sf.flag] = true
		missing = append(missing, sf.flag)
	}
	return missing
}

// FlagForSection returns the searchConfig.json flag controlling a
// transcript section, or "" when no flag controls it.
func FlagForSection(section string) string {
	for _, sf := range sectionFlags {
		if sf.section != "" && sf.section == section {
			return sf.flag
		}
	}
	return ""
}
