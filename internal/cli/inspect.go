package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/includecycle/pkg/cycle"
	"github.com/matzehuels/includecycle/pkg/depgraph"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// inspectCommand creates the inspect command for browsing the graph.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [root]",
		Short: "Browse directory dependencies interactively",
		Long: `Scan the tree and open an interactive list of directory dependencies.

Edges on the detected cycle are listed first and highlighted. Press enter to
show the headers behind the selected edge.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args)
		},
	}
}

func (c *CLI) runInspect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	root := resolveRoot(args)
	opts, err := c.scan.options(cmd, root, "")
	if err != nil {
		return err
	}
	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return c.reportFailure(root, "", err)
	}

	m := NewEdgeListModel(result.Graph, result.Cycle, result.HasCycle)
	if _, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(c.Out)).Run(); err != nil {
		return err
	}
	return nil
}

// =============================================================================
// EdgeListModel - Interactive edge browser
// =============================================================================

// EdgeListModel is the bubbletea model for browsing directory edges.
type EdgeListModel struct {
	Edges    []depgraph.Edge
	OnCycle  map[depgraph.Pair]bool
	Cycle    cycle.Cycle
	HasCycle bool
	Cursor   int
	Offset   int
	Height   int
	Expanded bool
}

// NewEdgeListModel creates an edge list with cycle legs first, in cycle
// order, followed by the remaining edges sorted by pair.
func NewEdgeListModel(g *depgraph.Graph, c cycle.Cycle, found bool) EdgeListModel {
	m := EdgeListModel{
		OnCycle:  make(map[depgraph.Pair]bool),
		Cycle:    c,
		HasCycle: found,
		Height:   15,
	}
	if found {
		for _, leg := range c.Legs(g) {
			m.OnCycle[depgraph.Pair{From: leg.From, To: leg.To}] = true
			m.Edges = append(m.Edges, depgraph.Edge{From: leg.From, To: leg.To, Headers: leg.Headers})
		}
	}
	for _, e := range g.Edges() {
		if !m.OnCycle[depgraph.Pair{From: e.From, To: e.To}] {
			m.Edges = append(m.Edges, e)
		}
	}
	return m
}

func (m EdgeListModel) Init() tea.Cmd {
	return nil
}

func (m EdgeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Edges)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Expanded = !m.Expanded
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 10
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m EdgeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Directory Dependencies"))
	b.WriteString("\n")
	if m.HasCycle {
		b.WriteString(StyleCycle.Render("Cycle: " + m.Cycle.String()))
	} else {
		b.WriteString(styleIconSuccess.Render("No circular dependencies detected."))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ headers  q quit"))
	b.WriteString("\n\n")

	if len(m.Edges) == 0 {
		b.WriteString(listDimStyle.Render("No include dependencies between directories."))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Edges))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Edges[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, e.From, e.To, fmt.Sprintf("%d", len(e.Headers))})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "From", "To", "Headers").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Edges) {
				return lipgloss.NewStyle()
			}
			e := m.Edges[idx]
			style := lipgloss.NewStyle().Foreground(colorWhite)
			if m.OnCycle[depgraph.Pair{From: e.From, To: e.To}] {
				style = style.Foreground(colorRed)
			}
			if idx == m.Cursor {
				style = style.Bold(true)
			}
			return style
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	if m.Expanded {
		e := m.Edges[m.Cursor]
		b.WriteString(StyleValue.Render(fmt.Sprintf("%s -> %s", e.From, e.To)))
		b.WriteString("\n")
		for _, h := range e.Headers {
			b.WriteString("  " + listDimStyle.Render(h) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Edges))))

	return b.String()
}
