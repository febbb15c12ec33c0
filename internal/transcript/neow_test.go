package transcript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNeowOptions(t *testing.T) {
	input := "Neow Options:\n[opt1][opt2][ Lose your starting Relic Obtain a random boss Relic ]\n[enemy1]"
	c := newCursor(input)

	got, err := c.neowOptions()
	if err != nil {
		t.Fatalf("neowOptions() error = %v", err)
	}
	if diff := cmp.Diff([]string{"opt1", "opt2"}, got); diff != "" {
		t.Errorf("neowOptions() mismatch (-want +got):\n%s", diff)
	}
	if c.rest() != "[enemy1]" {
		t.Errorf("rest = %q, want %q", c.rest(), "[enemy1]")
	}
}

func TestSplitNeowOptions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"spaced options", "[ Max HP +8 ] [ Obtain a random rare Card ]\n", []string{"Max HP +8", "Obtain a random rare Card"}},
		{"empty pieces dropped", "[][ ]  ]", []string{}},
		{"repeated open brackets stripped", "[[ Enemies in your next three combats have 1 HP ]", []string{"Enemies in your next three combats have 1 HP"}},
		{"nested brackets are not balanced", "[a [b] c]", []string{"a [b", "c"}},
		{"no brackets", "Choose a card", []string{"Choose a card"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitNeowOptions(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("splitNeowOptions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNeowOptionsErrors(t *testing.T) {
	t.Run("missing marker", func(t *testing.T) {
		_, err := newCursor("[opt1]" + neowFinalOption).neowOptions()
		assertStructureError(t, err, SectionNeowOptions)
	})
	t.Run("missing final option", func(t *testing.T) {
		_, err := newCursor("Neow Options:\n[opt1][opt2]\n").neowOptions()
		se := assertStructureError(t, err, SectionNeowOptions)
		if se.Details["marker"] != neowFinalOption {
			t.Errorf("marker = %q, want final option", se.Details["marker"])
		}
	})
}
