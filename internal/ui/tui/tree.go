// Package tui provides the interactive artifact tree view using BubbleTea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"agentctx/internal/model"
	"agentctx/internal/server"
)

// nodeKind distinguishes the rows of the flattened tree.
type nodeKind int

const (
	nodeGroup nodeKind = iota
	nodeEntry
)

// treeNode is one visible row of the artifact tree.
type treeNode struct {
	kind     nodeKind
	label    string
	detail   string
	failed   bool
	group    int
	children []treeNode
}

// treeKeyMap defines the key bindings for the tree view.
type treeKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Detail key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultTreeKeyMap() treeKeyMap {
	return treeKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "tab"),
			key.WithHelp("space", "expand/collapse"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter/v", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Styles for the tree view.
var treeStyles = struct {
	Title    lipgloss.Style
	Group    lipgloss.Style
	Selected lipgloss.Style
	Failed   lipgloss.Style
	Dim      lipgloss.Style
	Help     lipgloss.Style
	Detail   lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1),
	Group:    lipgloss.NewStyle().Bold(true),
	Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	Failed:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Detail:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
}

type treePhase int

const (
	treePhaseList treePhase = iota
	treePhaseDetail
)

const treeLabelWidth = 60

// TreeModel is the BubbleTea model for the artifact tree view.
type TreeModel struct {
	groups    []treeNode
	collapsed map[int]bool
	cursor    int
	keys      treeKeyMap
	phase     treePhase
	viewport  viewport.Model
	width     int
	height    int
	quitting  bool
}

// NewTreeModel builds the tree from a full project context.
func NewTreeModel(pc server.ProjectContext) TreeModel {
	return TreeModel{
		groups:    buildGroups(pc),
		collapsed: map[int]bool{},
		keys:      defaultTreeKeyMap(),
	}
}

// buildGroups shapes the scan results into the four top-level groups.
func buildGroups(pc server.ProjectContext) []treeNode {
	rules := treeNode{kind: nodeGroup, label: fmt.Sprintf("Rules (%d)", len(pc.Rules))}
	for _, r := range pc.Rules {
		rules.children = append(rules.children, treeNode{
			kind:   nodeEntry,
			label:  r.FileName,
			detail: fmt.Sprintf("%s\n\n%s", r.Metadata.Description, r.Content),
			failed: r.Metadata.Description == model.ErrParsingFile,
		})
	}

	commands := treeNode{kind: nodeGroup, label: fmt.Sprintf("Commands (%d)", len(pc.Commands))}
	for _, c := range pc.Commands {
		commands.children = append(commands.children, treeNode{
			kind:   nodeEntry,
			label:  fmt.Sprintf("%s [%s]", c.FileName, c.Location),
			detail: c.Content,
			failed: c.Content == model.ErrReadingContent,
		})
	}

	skills := treeNode{kind: nodeGroup, label: fmt.Sprintf("Skills (%d)", len(pc.Skills))}
	for _, s := range pc.Skills {
		label := s.FileName
		if s.Metadata != nil && s.Metadata.Title != "" {
			label = fmt.Sprintf("%s — %s", s.FileName, s.Metadata.Title)
		}
		skills.children = append(skills.children, treeNode{
			kind:   nodeEntry,
			label:  fmt.Sprintf("%s [%s]", label, s.Location),
			detail: s.Content,
			failed: s.Content == model.ErrReadingContent,
		})
	}

	project := treeNode{kind: nodeGroup, label: "Project Artifacts"}
	project.children = append(project.children, docNode(pc.Artifacts.Doc))
	project.children = append(project.children, specNodes(pc.Artifacts.Specs)...)
	project.children = append(project.children, schemaNodes(pc.Artifacts.Schemas)...)

	groups := []treeNode{rules, commands, skills, project}
	for i := range groups {
		for j := range groups[i].children {
			groups[i].children[j].group = i
		}
	}
	return groups
}

func docNode(doc model.ProjectDoc) treeNode {
	if !doc.Exists {
		return treeNode{kind: nodeEntry, label: "AGENTS.md (not found)", detail: "No project doc found."}
	}
	var sb strings.Builder
	if doc.Mission != "" {
		fmt.Fprintf(&sb, "Mission: %s\n", doc.Mission)
	}
	if doc.CorePhilosophy != "" {
		fmt.Fprintf(&sb, "Philosophy: %s\n", doc.CorePhilosophy)
	}
	fmt.Fprintf(&sb, "Sections: %d\n", len(doc.Sections))
	return treeNode{kind: nodeEntry, label: "AGENTS.md", detail: sb.String()}
}

func specNodes(specs model.SpecList) []treeNode {
	if !specs.Exists {
		return []treeNode{{kind: nodeEntry, label: "specs/ (not found)", detail: "No specs directory."}}
	}
	nodes := make([]treeNode, 0, len(specs.Entries))
	for _, e := range specs.Entries {
		flags := []string{}
		if e.HasBlueprint {
			flags = append(flags, "blueprint")
		}
		if e.HasContract {
			flags = append(flags, "contract")
		}
		detail := fmt.Sprintf("Path: %s\nSections: %s", e.Path, strings.Join(flags, ", "))
		nodes = append(nodes, treeNode{kind: nodeEntry, label: "spec: " + e.Domain, detail: detail})
	}
	return nodes
}

func schemaNodes(schemas model.SchemaList) []treeNode {
	if !schemas.Exists {
		return []treeNode{{kind: nodeEntry, label: "schemas/ (not found)", detail: "No schemas directory."}}
	}
	nodes := make([]treeNode, 0, len(schemas.Entries))
	for _, e := range schemas.Entries {
		nodes = append(nodes, treeNode{
			kind:   nodeEntry,
			label:  "schema: " + e.Name,
			detail: fmt.Sprintf("Path: %s\nID: %s", e.Path, e.SchemaID),
		})
	}
	return nodes
}

// visibleRows flattens the groups into the rows currently on screen,
// honoring collapsed state.
func (m TreeModel) visibleRows() []treeNode {
	var rows []treeNode
	for i, g := range m.groups {
		header := g
		header.group = i
		rows = append(rows, header)
		if m.collapsed[i] {
			continue
		}
		rows = append(rows, g.children...)
	}
	return rows
}

// Init implements tea.Model.
func (m TreeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if m.phase == treePhaseDetail {
			switch {
			case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Detail):
				m.phase = treePhaseList
				return m, nil
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		rows := m.visibleRows()
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.cursor < len(rows) && rows[m.cursor].kind == nodeGroup {
				g := rows[m.cursor].group
				m.collapsed[g] = !m.collapsed[g]
			}
		case key.Matches(msg, m.keys.Detail):
			if m.cursor < len(rows) && rows[m.cursor].kind == nodeEntry {
				m.phase = treePhaseDetail
				if m.viewport.Width == 0 {
					m.viewport = viewport.New(76, 20)
				}
				m.viewport.SetContent(rows[m.cursor].detail)
				m.viewport.GotoTop()
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m TreeModel) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == treePhaseDetail {
		return treeStyles.Title.Render("Artifact Detail") + "\n" +
			treeStyles.Detail.Render(m.viewport.View()) + "\n" +
			treeStyles.Help.Render("esc back · q quit")
	}

	var sb strings.Builder
	sb.WriteString(treeStyles.Title.Render("Agent Context"))
	sb.WriteString("\n")

	for i, row := range m.visibleRows() {
		line := renderRow(row, m.collapsed[row.group])
		if i == m.cursor {
			line = treeStyles.Selected.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString(treeStyles.Help.Render("↑/↓ move · space expand/collapse · enter details · q quit"))
	return sb.String()
}

func renderRow(row treeNode, collapsed bool) string {
	if row.kind == nodeGroup {
		marker := "▾"
		if collapsed {
			marker = "▸"
		}
		return treeStyles.Group.Render(fmt.Sprintf("%s %s", marker, row.label))
	}
	label := runewidth.Truncate(row.label, treeLabelWidth, "…")
	if row.failed {
		return "  " + treeStyles.Failed.Render("✗ "+label)
	}
	return "  " + label
}

// Run starts the tree view over the given project context and blocks until
// the user quits.
func Run(pc server.ProjectContext) error {
	p := tea.NewProgram(NewTreeModel(pc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
