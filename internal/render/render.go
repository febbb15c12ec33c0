// Package render writes decoded transcripts as JSON, YAML, or a human table.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/seedsearch/internal/errors"
	"github.com/NielsdaWheelz/seedsearch/internal/transcript"
)

// Output formats accepted by Write.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Constants for human output formatting.
const (
	// CellMaxLen is the maximum display length of a list cell in text output.
	CellMaxLen = 60

	// EmptyCell is displayed for empty lists.
	EmptyCell = "-"
)

// Write renders res in the named format.
// Returns E_USAGE for an unknown format.
func Write(w io.Writer, format string, res transcript.Result) error {
	switch format {
	case FormatJSON, "":
		return JSON(w, res)
	case FormatYAML:
		return YAML(w, res)
	case FormatText:
		return Text(w, res)
	default:
		return errors.New(errors.EUsage, fmt.Sprintf("unknown format %q; use json, yaml, or text", format))
	}
}

// JSON writes res as indented JSON. An empty result renders "records": [].
func JSON(w io.Writer, res transcript.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(normalize(res))
}

// YAML writes res as a YAML document.
func YAML(w io.Writer, res transcript.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(normalize(res)); err != nil {
		return err
	}
	return enc.Close()
}

// Text writes one row per record followed by the "seeds found" footer.
func Text(w io.Writer, res transcript.Result) error {
	if len(res.Records) == 0 {
		_, err := fmt.Fprintln(w, "no seeds found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tNUMBER\tBOSSES\tBOSS_RELICS\tCOMBATS\tEVENTS\tCARD_FLOORS")
	for _, rec := range res.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
			rec.SeedString,
			rec.Seed,
			cell(rec.Bosses),
			cell(rec.BossRelics),
			len(rec.Combats),
			len(rec.Events),
			len(rec.CardChoices),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if res.Summary != nil {
		if _, err := fmt.Fprintf(w, "\n%s seeds found: %s\n", res.Summary.Count, cell(res.Summary.Seeds)); err != nil {
			return err
		}
	}
	return nil
}

// cell joins a list for a table cell, truncating long lists.
func cell(items []string) string {
	if len(items) == 0 {
		return EmptyCell
	}
	return TruncateForDisplay(strings.Join(items, ", "), CellMaxLen)
}

// TruncateForDisplay truncates s to maxLen runes, adding an ellipsis if needed.
func TruncateForDisplay(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}

// normalize replaces a nil record slice so encoders print an empty list.
func normalize(res transcript.Result) transcript.Result {
	if res.Records == nil {
		res.Records = []transcript.Record{}
	}
	return res
}
