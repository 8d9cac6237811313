package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/filerank/pkg/rank"
)

// renderRankTable formats ranked candidates as a bordered table.
// With top > 0 only the first top rows are shown. Keys are displayed
// relative to the working directory when possible.
func renderRankTable(ranked []*rank.Candidate, top int) string {
	shown := limitTop(ranked, top)

	rows := make([][]string, len(shown))
	for i, c := range shown {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			displayKey(c.Key),
			fmt.Sprintf("%.6f", c.Weight),
			fmt.Sprintf("%d", c.Dependents),
			fmt.Sprintf("%d", c.Lines),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	tier := len(shown) / 3
	if tier == 0 {
		tier = 1
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "File", "Weight", "Dependents", "Lines").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return StyleDim
			case 2:
				return StyleNumber
			case 1:
				if row < tier {
					return StyleValue.Bold(true)
				}
				return StyleValue
			default:
				return StyleDim
			}
		})

	return t.Render()
}

// rankedEntry is the JSON export shape for one ranked file.
type rankedEntry struct {
	Rank       int     `json:"rank"`
	Key        string  `json:"key"`
	Weight     float64 `json:"weight"`
	Dependents int     `json:"dependents"`
	Lines      int     `json:"lines"`
}

// writeRankedJSON writes ranked candidates as an indented JSON array.
func writeRankedJSON(w io.Writer, ranked []*rank.Candidate, top int) error {
	shown := limitTop(ranked, top)

	entries := make([]rankedEntry, len(shown))
	for i, c := range shown {
		entries[i] = rankedEntry{
			Rank:       i + 1,
			Key:        c.Key,
			Weight:     c.Weight,
			Dependents: c.Dependents,
			Lines:      c.Lines,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode ranking: %w", err)
	}
	return nil
}

// limitTop truncates ranked to the first top entries when top > 0.
func limitTop(ranked []*rank.Candidate, top int) []*rank.Candidate {
	if top > 0 && top < len(ranked) {
		return ranked[:top]
	}
	return ranked
}

// displayKey shortens an absolute module key to a working-directory
// relative path when that is actually shorter.
func displayKey(key string) string {
	wd, err := os.Getwd()
	if err != nil {
		return key
	}
	rel, err := filepath.Rel(wd, key)
	if err != nil || len(rel) >= len(key) {
		return key
	}
	return rel
}
