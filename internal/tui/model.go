// Package tui implements the interactive load-order editor: a scrolling pack
// list with multi-select basket moves, pin toggling, and one-key heuristic
// reordering, built on Bubble Tea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/startuz/xoxide/internal/heuristics"
	"github.com/startuz/xoxide/internal/lint"
	"github.com/startuz/xoxide/internal/order"
	"github.com/startuz/xoxide/internal/region"
	"github.com/startuz/xoxide/internal/scenery"
)

// Model is the root Bubble Tea model: the editable pack list.
type Model struct {
	packs    []scenery.Pack
	heur     *heuristics.Model
	regions  *region.Snapshot
	ctxFn    func(scenery.Pack) heuristics.Context
	saveFn   func([]scenery.Pack) error
	report   lint.Report
	keys     KeyMap
	cursor   int
	offset   int
	selected map[string]bool
	status   string
	width    int
	height   int
}

// New creates the editor over the given packs. ctxFn supplies per-pack score
// context; saveFn persists the order when the user hits write.
func New(packs []scenery.Pack, heur *heuristics.Model, regions *region.Snapshot,
	ctxFn func(scenery.Pack) heuristics.Context, saveFn func([]scenery.Pack) error) Model {
	return Model{
		packs:    packs,
		heur:     heur,
		regions:  regions,
		ctxFn:    ctxFn,
		saveFn:   saveFn,
		report:   lint.Validate(packs),
		keys:     DefaultKeyMap(),
		selected: make(map[string]bool),
		height:   24,
		width:    80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Select):
			m.toggleSelect()
		case key.Matches(msg, m.keys.Drop):
			m.dropSelection()
		case key.Matches(msg, m.keys.Pin):
			m.togglePin()
		case key.Matches(msg, m.keys.Sort):
			m.heuristicOrder()
		case key.Matches(msg, m.keys.Save):
			m.save()
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.packs) {
		m.cursor = len(m.packs) - 1
	}
	vis := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vis {
		m.offset = m.cursor - vis + 1
	}
}

func (m *Model) toggleSelect() {
	if len(m.packs) == 0 {
		return
	}
	name := m.packs[m.cursor].Name
	if m.selected[name] {
		delete(m.selected, name)
	} else {
		m.selected[name] = true
	}
}

// dropSelection moves the selected packs to sit before the cursor row and
// auto-pins them to their new neighbor's score tier.
func (m *Model) dropSelection() {
	if len(m.selected) == 0 {
		m.status = "nothing selected"
		return
	}

	names := make([]string, 0, len(m.selected))
	for _, p := range m.packs {
		if m.selected[p.Name] {
			names = append(names, p.Name)
		}
	}

	moved, at := order.Move(m.packs, names, m.cursor)
	m.packs = moved
	order.AutoPin(m.heur, m.packs, at, len(names), m.ctxFn)
	m.selected = make(map[string]bool)
	m.report = lint.Validate(m.packs)
	m.status = fmt.Sprintf("moved %d packs (auto-pinned)", len(names))
}

func (m *Model) togglePin() {
	if len(m.packs) == 0 {
		return
	}
	p := m.packs[m.cursor]
	if _, ok := m.heur.Pinned(p.Name); ok {
		m.heur.Unpin(p.Name)
		m.status = "unpinned " + p.Name
		return
	}
	score := m.heur.Predict(p.Name, p.Path, m.ctx(p))
	m.heur.Pin(p.Name, score)
	m.status = fmt.Sprintf("pinned %s at %d", p.Name, score)
}

func (m *Model) heuristicOrder() {
	s := order.Sorter{Model: m.heur, Regions: m.regions, Context: m.ctxFn}
	s.Sort(m.packs)
	m.report = lint.Validate(m.packs)
	m.status = "reordered by heuristics"
}

func (m *Model) save() {
	if m.saveFn == nil {
		m.status = "no writer configured"
		return
	}
	if err := m.saveFn(m.packs); err != nil {
		m.status = "write failed: " + err.Error()
		return
	}
	m.status = "order written"
}

func (m Model) ctx(p scenery.Pack) heuristics.Context {
	if m.ctxFn == nil {
		return heuristics.Context{}
	}
	return m.ctxFn(p)
}

// visibleRows returns how many list rows fit between header and footer.
func (m Model) visibleRows() int {
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("xoxide · %d packs", len(m.packs))
	if worst := m.report.Worst(); len(m.report.Issues) > 0 {
		tag := fmt.Sprintf(" %d issues (%s)", len(m.report.Issues), worst)
		if worst == lint.Critical {
			title += styleCritical.Render(tag)
		} else {
			title += styleWarning.Render(tag)
		}
	}
	b.WriteString(styleHeader.Render(title))
	b.WriteByte('\n')

	end := m.offset + m.visibleRows()
	if end > len(m.packs) {
		end = len(m.packs)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteByte('\n')
	}

	b.WriteString(styleFooter.Render(
		"space select · enter drop · p pin · o order · w write · q quit"))
	if m.status != "" {
		b.WriteString(styleMuted.Render("  " + m.status))
	}
	return b.String()
}

// renderRow formats one pack line: cursor, selection, pin, score, category.
func (m Model) renderRow(i int) string {
	p := m.packs[i]

	indicator := " "
	if i == m.cursor {
		indicator = cursorIndicator
	}

	pin := " "
	score := m.heur.Predict(p.Name, p.Path, m.ctx(p))
	if _, ok := m.heur.Pinned(p.Name); ok {
		pin = pinMarker
	}

	line := fmt.Sprintf("%s%s %3d  %-16s %s", indicator, pin, score, p.Category, p.Name)
	if p.Status != scenery.Active {
		line += styleMuted.Render(" (" + p.Status.String() + ")")
	}

	switch {
	case i == m.cursor:
		return styleCursorRow.Render(line)
	case m.selected[p.Name]:
		return styleSelected.Render(line)
	default:
		return line
	}
}
