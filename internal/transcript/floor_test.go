package transcript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFloorEntry(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     FloorEntry
		wantOK   bool
		wantRest string
	}{
		{
			name:     "simple",
			input:    "Floor 3: [Strike, Defend]",
			want:     FloorEntry{Floor: "3", Items: []string{"Strike", "Defend"}},
			wantOK:   true,
			wantRest: "",
		},
		{
			name:     "label keeps leading zeros",
			input:    "Floor 007: [Bash]\nnext",
			want:     FloorEntry{Floor: "007", Items: []string{"Bash"}},
			wantOK:   true,
			wantRest: "\nnext",
		},
		{"missing colon space", "Floor 3 [Strike]", FloorEntry{}, false, "Floor 3 [Strike]"},
		{"colon without space", "Floor 3:[Strike]", FloorEntry{}, false, "Floor 3:[Strike]"},
		{"missing label", "Floor : [Strike]", FloorEntry{}, false, "Floor : [Strike]"},
		{"missing list", "Floor 3: Strike", FloorEntry{}, false, "Floor 3: Strike"},
		{"wrong prefix", "floor 3: [Strike]", FloorEntry{}, false, "floor 3: [Strike]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.input)
			got, ok := c.floorEntry()
			if ok != tt.wantOK {
				t.Fatalf("floorEntry() ok = %v, want %v", ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("floorEntry() mismatch (-want +got):\n%s", diff)
			}
			if c.rest() != tt.wantRest {
				t.Errorf("rest = %q, want %q", c.rest(), tt.wantRest)
			}
		})
	}
}

func TestFloorGroup(t *testing.T) {
	input := "Card choices:\nFloor 1: [Anger, Clash]\n  Floor 4: [Cleave]\n\nPotions:\nFloor 2: [Fire Potion]\nOther cards:"
	c := newCursor(input)

	cards, err := c.floorGroup(SectionCardChoices, markerCardChoices, markerPotions)
	if err != nil {
		t.Fatalf("floorGroup(cards) error = %v", err)
	}
	wantCards := []FloorEntry{
		{Floor: "1", Items: []string{"Anger", "Clash"}},
		{Floor: "4", Items: []string{"Cleave"}},
	}
	if diff := cmp.Diff(wantCards, cards); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
	if !c.hasPrefix(markerPotions) {
		t.Fatalf("closing marker must stay unconsumed, rest = %q", c.rest())
	}

	potions, err := c.floorGroup(SectionPotions, markerPotions, markerOtherCards)
	if err != nil {
		t.Fatalf("floorGroup(potions) error = %v", err)
	}
	if diff := cmp.Diff([]FloorEntry{{Floor: "2", Items: []string{"Fire Potion"}}}, potions); diff != "" {
		t.Errorf("potions mismatch (-want +got):\n%s", diff)
	}
	if c.rest() != markerOtherCards {
		t.Errorf("rest = %q, want %q", c.rest(), markerOtherCards)
	}
}

func TestFloorGroupDropsUnmatchedRemainder(t *testing.T) {
	input := "Card choices:\nFloor 1: [Anger]\nsomething else\nFloor 2: [Clash]\nPotions:"
	c := newCursor(input)

	got, err := c.floorGroup(SectionCardChoices, markerCardChoices, markerPotions)
	if err != nil {
		t.Fatalf("floorGroup() error = %v", err)
	}
	if diff := cmp.Diff([]FloorEntry{{Floor: "1", Items: []string{"Anger"}}}, got); diff != "" {
		t.Errorf("floorGroup() mismatch (-want +got):\n%s", diff)
	}
	if c.rest() != markerPotions {
		t.Errorf("rest = %q, want %q", c.rest(), markerPotions)
	}
}

func TestFloorGroupEmpty(t *testing.T) {
	got, err := newCursor("Card choices:\nPotions:").floorGroup(SectionCardChoices, markerCardChoices, markerPotions)
	if err != nil {
		t.Fatalf("floorGroup() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("floorGroup() = %#v, want empty non-nil slice", got)
	}
}

func TestFloorGroupEntryDoesNotCrossBoundary(t *testing.T) {
	// The list would only close after the boundary marker.
	input := "Potions:\nFloor 2: [Fire Potion, Other cards: x]"
	got, err := newCursor(input).floorGroup(SectionPotions, markerPotions, markerOtherCards)
	if err != nil {
		t.Fatalf("floorGroup() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("floorGroup() = %v, want no entries", got)
	}
}

func TestFloorGroupErrors(t *testing.T) {
	t.Run("missing lead", func(t *testing.T) {
		_, err := newCursor("Floor 1: [x]\nPotions:").floorGroup(SectionCardChoices, markerCardChoices, markerPotions)
		se := assertStructureError(t, err, SectionCardChoices)
		if se.Details["marker"] != markerCardChoices {
			t.Errorf("marker = %q", se.Details["marker"])
		}
	})
	t.Run("missing trail", func(t *testing.T) {
		_, err := newCursor("Potions:\nFloor 1: [x]\n").floorGroup(SectionPotions, markerPotions, markerOtherCards)
		se := assertStructureError(t, err, SectionPotions)
		if se.Details["marker"] != markerOtherCards {
			t.Errorf("marker = %q", se.Details["marker"])
		}
	})
}
