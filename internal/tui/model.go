package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tastemap/internal/domain"
)

// AnalysisPort is the TUI-facing subset of the analysis service.
type AnalysisPort interface {
	ResolveName(candidate string) (domain.MatchResult, error)
}

// view selects which pane the viewport renders.
type view int

const (
	viewClusters view = iota
	viewTaxonomy
)

// Model is the Bubble Tea model for the dashboard TUI.
type Model struct {
	service  AnalysisPort
	analysis domain.Analysis
	input    textinput.Model
	viewport viewport.Model
	summary  string
	status   string
	cursor   int
	pane     view
	ready    bool
}

// New creates a new TUI model over an already-computed analysis.
func New(service AnalysisPort, analysis domain.Analysis, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a name to resolve, Enter to match"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		analysis: analysis,
		input:    ti,
		viewport: vp,
		summary:  summary,
		status:   "Loaded. Up/Down cycles clusters, Tab shows taxonomy.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and query boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + summary
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderPane())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			candidate := strings.TrimSpace(m.input.Value())
			if candidate != "" {
				match, err := m.service.ResolveName(candidate)
				if err != nil {
					m.status = "Error: " + err.Error()
				} else {
					m.status = renderMatch(match)
				}
				return m, nil
			}
		case "tab":
			if m.pane == viewClusters {
				m.pane = viewTaxonomy
			} else {
				m.pane = viewClusters
			}
			m.viewport.SetContent(m.renderPane())
			return m, nil
		case "down":
			if n := m.clusterCount(); n > 0 && m.pane == viewClusters {
				m.cursor = (m.cursor + 1) % n
				m.viewport.SetContent(m.renderPane())
				return m, nil
			}
		case "up":
			if n := m.clusterCount(); n > 0 && m.pane == viewClusters {
				m.cursor = (m.cursor - 1 + n) % n
				m.viewport.SetContent(m.renderPane())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current pane.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("tastemap")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	body := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) clusterCount() int {
	n := 0
	for _, c := range m.analysis.Clusters {
		if c+1 > n {
			n = c + 1
		}
	}
	return n
}

func (m Model) renderPane() string {
	if m.pane == viewTaxonomy {
		return m.renderTaxonomy()
	}
	return m.renderCluster()
}

func (m Model) renderCluster() string {
	n := m.clusterCount()
	if n == 0 {
		return "No clusters yet."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Cluster %d/%d\n\n", m.cursor+1, n)
	for i, c := range m.analysis.Clusters {
		if c != m.cursor {
			continue
		}
		label := m.analysis.Batch.Labels[i]
		point := m.analysis.Points[i]
		line := fmt.Sprintf("%s  (%.2f, %.2f)", label.Full, point.X, point.Y)
		if i < len(m.analysis.Matches) && m.analysis.Matches[i].Method != domain.MatchNone {
			line += "  → " + highlightStyle.Render(m.analysis.Matches[i].Matched)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderTaxonomy() string {
	if len(m.analysis.Batch.Taxonomy) == 0 {
		return "No categorized labels."
	}
	var b strings.Builder
	for _, category := range m.analysis.Batch.Taxonomy.Categories() {
		b.WriteString(highlightStyle.Render(category) + "\n")
		for _, concept := range m.analysis.Batch.Taxonomy[category] {
			b.WriteString("  " + concept + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderMatch(match domain.MatchResult) string {
	switch match.Method {
	case domain.MatchNone:
		return fmt.Sprintf("No canonical match for %q", match.Input)
	default:
		return fmt.Sprintf("%q → %q (%s)", match.Input, match.Matched, match.Method)
	}
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
