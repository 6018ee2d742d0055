// Package tui provides a terminal list component over the virtkit core,
// built as a bubbletea model. Rows are virtualized: only the lines
// intersecting the terminal viewport are rendered, so lists with hundreds
// of thousands of rows stay responsive.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/virtkit/virtkit"
)

// wheelLines is how many rows one mouse-wheel tick scrolls.
const wheelLines = 3

// RenderItem renders one item as text. Multi-line output is allowed for
// items whose line count (see WithItemLines) is greater than one; output is
// clipped or padded to exactly that many lines.
type RenderItem func(index int, selected bool) string

// KeyMap defines the list keybindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
	}
}

// Styles holds the lipgloss styles used by the list.
type Styles struct {
	Item     lipgloss.Style
	Selected lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Item:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Reverse(true),
		Footer:   lipgloss.NewStyle().Faint(true),
	}
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithKeyMap replaces the default keybindings.
func WithKeyMap(keys KeyMap) ModelOption {
	return func(m *Model) { m.keys = keys }
}

// WithStyles replaces the default styles.
func WithStyles(styles Styles) ModelOption {
	return func(m *Model) { m.styles = styles }
}

// WithItemLines supplies a per-item line count for variable-height rows.
// Without it every item is one line.
func WithItemLines(lines func(index int) int) ModelOption {
	return func(m *Model) { m.itemLines = lines }
}

// Model is a virtualized list component.
//
// Usage:
//
//	m := tui.NewList(len(rows), func(i int, selected bool) string {
//	    return rows[i]
//	})
//	p := tea.NewProgram(m, tea.WithMouseCellMotion())
type Model struct {
	virt    *virtkit.Virtualizer
	surface *virtkit.ProgramSurface
	render  RenderItem

	keys      KeyMap
	styles    Styles
	itemLines func(index int) int

	count    int
	selected int
	width    int
	height   int
	ready    bool
}

// NewList creates a list model for count items.
func NewList(count int, render RenderItem, opts ...ModelOption) Model {
	m := Model{
		render: render,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		count:  count,
	}
	for _, opt := range opts {
		opt(&m)
	}

	policy := virtkit.FixedHeight(1)
	if m.itemLines != nil {
		lines := m.itemLines
		policy = virtkit.VariableHeight(func(i int) float32 {
			return float32(lines(i))
		})
	}

	m.surface = virtkit.NewProgramSurface(0)
	m.virt = virtkit.New(count, policy, virtkit.Overscan(2))
	m.virt.Attach(m.surface)
	m.surface.SetContentExtent(m.virt.TotalHeight())

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surface.SetViewportExtent(float32(m.listHeight()))
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.surface.ScrollBy(-wheelLines)
		case tea.MouseButtonWheelDown:
			m.surface.ScrollBy(wheelLines)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.PageUp):
		m.surface.ScrollBy(-m.surface.ViewportExtent())
	case key.Matches(msg, m.keys.PageDown):
		m.surface.ScrollBy(m.surface.ViewportExtent())
	case key.Matches(msg, m.keys.Home):
		m.selected = 0
		m.virt.ScrollToIndex(0, virtkit.AlignStart)
	case key.Matches(msg, m.keys.End):
		m.selected = m.count - 1
		m.virt.ScrollToIndex(m.count-1, virtkit.AlignEnd)
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	if m.count == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= m.count {
		m.selected = m.count - 1
	}
	m.ensureVisible(m.selected)
}

// ensureVisible scrolls only when the item is outside the viewport, keeping
// the view stable while the selection walks through visible rows.
func (m *Model) ensureVisible(index int) {
	item, ok := m.virt.Item(index)
	if !ok {
		return
	}
	top := m.surface.ScrollOffset()
	bottom := top + m.surface.ViewportExtent()
	switch {
	case item.Start < top:
		m.virt.ScrollToIndex(index, virtkit.AlignStart)
	case item.End > bottom:
		m.virt.ScrollToIndex(index, virtkit.AlignEnd)
	}
}

// SetItemCount updates the item count after the underlying collection
// changed. The selection is clamped and scroll bounds refreshed.
func (m *Model) SetItemCount(count int) {
	if count < 0 {
		count = 0
	}
	m.count = count
	m.virt.SetItemCount(count)
	m.surface.SetContentExtent(m.virt.TotalHeight())
	if m.selected >= count {
		m.selected = count - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// Selected returns the selected item index, or -1 for an empty list.
func (m Model) Selected() int {
	if m.count == 0 {
		return -1
	}
	return m.selected
}

// Close releases the underlying virtualizer. Call when the component is
// permanently removed from the program.
func (m Model) Close() {
	m.virt.Close()
}

// listHeight is the viewport height in rows, minus the footer line.
func (m Model) listHeight() int {
	h := m.height - 1
	if h < 0 {
		h = 0
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	listHeight := m.listHeight()
	var b strings.Builder

	rows := m.visibleRows(listHeight)
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	for i := len(rows); i < listHeight; i++ {
		b.WriteByte('\n')
	}

	b.WriteString(m.styles.Footer.Render(m.footer()))
	return b.String()
}

// visibleRows assembles the terminal rows intersecting the viewport from
// the materialized window. The first materialized item may start above the
// viewport; its off-screen lines are skipped.
func (m Model) visibleRows(listHeight int) []string {
	items := m.virt.Items()
	if len(items) == 0 || listHeight == 0 {
		return nil
	}

	top := m.surface.ScrollOffset()
	skip := int(top - items[0].Start)
	if skip < 0 {
		skip = 0
	}

	rows := make([]string, 0, listHeight)
	for _, item := range items {
		for _, line := range m.itemRows(item) {
			if skip > 0 {
				skip--
				continue
			}
			if len(rows) == listHeight {
				return rows
			}
			rows = append(rows, line)
		}
	}
	return rows
}

// itemRows renders one item clipped or padded to exactly item.Size lines.
func (m Model) itemRows(item virtkit.VirtualItem) []string {
	wantLines := int(item.Size)
	if wantLines <= 0 {
		return nil
	}

	style := m.styles.Item
	if item.Index == m.selected {
		style = m.styles.Selected
	}

	lines := strings.Split(m.render(item.Index, item.Index == m.selected), "\n")
	rows := make([]string, wantLines)
	for i := 0; i < wantLines; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		rows[i] = style.Width(m.width).Render(line)
	}
	return rows
}

func (m Model) footer() string {
	if m.count == 0 {
		return "empty"
	}
	pos := fmt.Sprintf("%d/%d", m.selected+1, m.count)
	if m.virt.IsScrolling() {
		pos += " ~"
	}
	return pos
}
