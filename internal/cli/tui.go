package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/colplot/pkg/dataset"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorFaint)
)

// =============================================================================
// ScenarioPickerModel - Interactive scenario selection
// =============================================================================

// ScenarioSelection holds the result of the scenario picker. Fig is the
// layout toggled in the picker, or empty for the scenario default.
type ScenarioSelection struct {
	Scenario dataset.Scenario
	Fig      string
}

// ScenarioPickerModel is the bubbletea model for interactive scenario
// selection. The preview dataset drives per-column sparklines for the
// scenario under the cursor.
type ScenarioPickerModel struct {
	Scenarios []dataset.Scenario
	Preview   *dataset.Dataset
	Cursor    int
	Selected  *ScenarioSelection
	Height    int
	Offset    int

	flipped bool // layout override toggled with "f"
}

// NewScenarioPickerModel creates a new scenario picker model.
func NewScenarioPickerModel(scenarios []dataset.Scenario, preview *dataset.Dataset) ScenarioPickerModel {
	return ScenarioPickerModel{
		Scenarios: scenarios,
		Preview:   preview,
		Cursor:    0,
		Height:    15,
		Offset:    0,
	}
}

func (m ScenarioPickerModel) Init() tea.Cmd {
	return nil
}

func (m ScenarioPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Scenarios)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "f":
			m.flipped = !m.flipped
		case "enter":
			s := m.Scenarios[m.Cursor]
			sel := &ScenarioSelection{Scenario: s}
			if m.flipped {
				sel.Fig = flipFig(s.Fig)
			}
			m.Selected = sel
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 12
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ScenarioPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Scenario"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  f flip layout  ⏎ render  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Scenarios) {
		end = len(m.Scenarios)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		s := m.Scenarios[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		fig := s.Fig
		if m.flipped && i == m.Cursor {
			fig = flipFig(s.Fig)
		}

		rows = append(rows, []string{cursor, s.Name, fig, formatColumns(s.Columns), formatList(s.Styles)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("", "Scenario", "Fig", "Columns", "Styles").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Scenarios) {
				return lipgloss.NewStyle()
			}

			if actualIdx == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
			}
			if col == 2 || col == 3 || col == 4 {
				return lipgloss.NewStyle().Foreground(colorFaint)
			}
			return lipgloss.NewStyle().Foreground(colorValue)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(m.previewView())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Scenarios))))

	return b.String()
}

// previewView renders one sparkline per column of the scenario under the
// cursor.
func (m ScenarioPickerModel) previewView() string {
	if m.Preview == nil || len(m.Scenarios) == 0 {
		return ""
	}
	s := m.Scenarios[m.Cursor]
	_, total := m.Preview.Dims()

	cols := s.Columns
	if len(cols) == 0 {
		cols = make([]int, total)
		for i := range cols {
			cols[i] = i
		}
	}

	var b strings.Builder
	b.WriteString(listSelectedStyle.Render(s.Name))
	b.WriteString("\n")
	for _, c := range cols {
		if c < 0 || c >= total {
			continue
		}
		spark := sparkline(m.Preview.YColumn(c), sparkWidth)
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleNumber.Render(spark), listDimStyle.Render(m.Preview.Label(c))))
	}
	return b.String()
}

// flipFig swaps between the two figure layouts.
func flipFig(fig string) string {
	if fig == "subplots" {
		return "single"
	}
	return "subplots"
}

// =============================================================================
// Sparklines
// =============================================================================

// sparkBlocks are the eighth-block glyphs used for column previews.
var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkWidth is the preview width in glyphs.
const sparkWidth = 32

// sparkline compresses a series into a fixed-width row of block glyphs,
// scaled to the series min and max. A flat series renders as a midline.
func sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make([]rune, width)
	for i := range out {
		idx := 0
		if width > 1 {
			idx = i * (len(values) - 1) / (width - 1)
		}

		level := len(sparkBlocks) / 2
		if hi > lo {
			level = int((values[idx] - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		out[i] = sparkBlocks[level]
	}
	return string(out)
}
