package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/filerank/pkg/rank"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// FileListModel - Interactive ranking browser
// =============================================================================

// FileSelection holds the result of browsing the ranking.
type FileSelection struct {
	Candidate *rank.Candidate
}

// FileListModel is the bubbletea model for browsing ranked files.
type FileListModel struct {
	Ranked   []*rank.Candidate
	Cursor   int
	Selected *FileSelection
	Height   int
	Offset   int
}

// NewFileListModel creates a new ranking browser model.
func NewFileListModel(ranked []*rank.Candidate) FileListModel {
	return FileListModel{
		Ranked: ranked,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m FileListModel) Init() tea.Cmd {
	return nil
}

func (m FileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Ranked)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor = 0
			m.Offset = 0
		case "G", "end":
			m.Cursor = len(m.Ranked) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		case "enter":
			m.Selected = &FileSelection{Candidate: m.Ranked[m.Cursor]}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m FileListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Ranked Files"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G top/bottom  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Ranked) {
		end = len(m.Ranked)
	}

	tier := len(m.Ranked) / 3
	if tier == 0 {
		tier = 1
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		c := m.Ranked[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", i+1),
			displayKey(c.Key),
			fmt.Sprintf("%.6f", c.Weight),
			fmt.Sprintf("%d", c.Dependents),
			fmt.Sprintf("%d", c.Lines),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "File", "Weight", "Dependents", "Lines").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Ranked) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor
			isTopTier := actualIdx < tier

			base := lipgloss.NewStyle()
			if col >= 4 {
				base = base.Foreground(colorDim)
			}

			if isCurrent {
				if col == 2 || col == 3 {
					return base.Foreground(colorCyan).Bold(true)
				}
				return base.Bold(true)
			}
			if isTopTier && (col == 2 || col == 3) {
				return base.Foreground(colorGreen)
			}
			if col == 2 {
				return base.Foreground(colorWhite)
			}
			return base.Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Ranked))))

	return b.String()
}

// browseRanking runs the interactive ranking browser and prints the
// selected file, if any, after the program exits.
func browseRanking(ranked []*rank.Candidate) error {
	if len(ranked) == 0 {
		printInfo("Nothing to browse: no files were ranked")
		return nil
	}

	final, err := tea.NewProgram(NewFileListModel(ranked)).Run()
	if err != nil {
		return fmt.Errorf("interactive browser: %w", err)
	}

	m, ok := final.(FileListModel)
	if !ok || m.Selected == nil {
		return nil
	}

	c := m.Selected.Candidate
	printKeyValue("File", c.Key)
	printKeyValue("Weight", fmt.Sprintf("%.6f", c.Weight))
	printKeyValue("Dependents", fmt.Sprintf("%d", c.Dependents))
	printKeyValue("Lines", fmt.Sprintf("%d", c.Lines))
	return nil
}
