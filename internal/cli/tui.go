package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/AmirF00/GraphQL-Converter/pkg/schema"
	"github.com/AmirF00/GraphQL-Converter/pkg/sdl"
)

// List styles
var (
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// =============================================================================
// typeBrowserModel - Interactive schema browsing
// =============================================================================

// typeBrowserModel is the bubbletea model behind the inspect command: a
// filterable type list with a per-type SDL detail view.
type typeBrowserModel struct {
	model *schema.Schema

	all   []*schema.Type // every type, source order
	types []*schema.Type // filtered view of all

	filter string
	typing bool // filter input mode

	cursor int
	offset int
	height int

	detail string // rendered SDL block; non-empty shows the detail view
}

// newTypeBrowserModel creates a browser over a validated schema model.
func newTypeBrowserModel(s *schema.Schema) typeBrowserModel {
	all := s.Types()
	return typeBrowserModel{
		model:  s,
		all:    all,
		types:  all,
		height: 15,
	}
}

func (m typeBrowserModel) Init() tea.Cmd {
	return nil
}

func (m typeBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.detail != "" {
			return m.updateDetail(msg)
		}
		if m.typing {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)

	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m typeBrowserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", "backspace":
		m.detail = ""
	}
	return m, nil
}

func (m typeBrowserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.typing = false
	case "backspace":
		if m.filter != "" {
			m.filter = m.filter[:len(m.filter)-1]
		}
		return m.applyFilter(), nil
	default:
		if msg.Type == tea.KeyRunes {
			m.filter += string(msg.Runes)
			return m.applyFilter(), nil
		}
	}
	return m, nil
}

func (m typeBrowserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "/":
		m.typing = true
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case "down", "j":
		if m.cursor < len(m.types)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case "enter":
		if len(m.types) == 0 {
			return m, nil
		}
		m.detail = m.renderDetail(m.types[m.cursor])
	}
	return m, nil
}

// applyFilter recomputes the visible types from the filter text.
func (m typeBrowserModel) applyFilter() typeBrowserModel {
	if m.filter == "" {
		m.types = m.all
	} else {
		needle := strings.ToLower(m.filter)
		filtered := make([]*schema.Type, 0, len(m.all))
		for _, t := range m.all {
			if strings.Contains(strings.ToLower(t.Name), needle) {
				filtered = append(filtered, t)
			}
		}
		m.types = filtered
	}

	m.offset = 0
	if m.cursor >= len(m.types) {
		m.cursor = len(m.types) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// renderDetail produces the SDL block shown in the detail view.
func (m typeBrowserModel) renderDetail(t *schema.Type) string {
	block, err := sdl.EmitType(m.model, t)
	if err != nil {
		return err.Error()
	}
	if block == "" {
		return fmt.Sprintf("scalar %s (built-in)", t.Name)
	}
	return block
}

func (m typeBrowserModel) View() string {
	if m.detail != "" {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m typeBrowserModel) viewDetail() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.types[m.cursor].Name))
	b.WriteString("\n")
	b.WriteString(detailBoxStyle.Render(m.detail))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))

	return b.String()
}

func (m typeBrowserModel) viewList() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Schema Types"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ show SDL  / filter  q quit"))
	b.WriteString("\n")
	if m.filter != "" || m.typing {
		prompt := "/" + m.filter
		if m.typing {
			prompt += "▌"
		}
		b.WriteString(StyleHighlight.Render(prompt))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	end := m.offset + m.height
	if end > len(m.types) {
		end = len(m.types)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		t := m.types[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, t.Name, kindLabel(t.Kind), membersLabel(t)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Type", "Kind", "Members").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col >= 2 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(tbl.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.types))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// kindLabel maps a model kind to its SDL keyword for display.
func kindLabel(k schema.Kind) string {
	switch k {
	case schema.KindObject:
		return "type"
	case schema.KindInterface:
		return "interface"
	case schema.KindUnion:
		return "union"
	case schema.KindInputObject:
		return "input"
	case schema.KindEnum:
		return "enum"
	case schema.KindScalar:
		return "scalar"
	}
	return strings.ToLower(string(k))
}

// membersLabel summarizes a type's contents for the list view.
func membersLabel(t *schema.Type) string {
	switch {
	case len(t.Fields) > 0:
		return fmt.Sprintf("%d fields", len(t.Fields))
	case len(t.EnumValues) > 0:
		return fmt.Sprintf("%d values", len(t.EnumValues))
	case len(t.PossibleTypes) > 0:
		return fmt.Sprintf("%d members", len(t.PossibleTypes))
	}
	return "-"
}
