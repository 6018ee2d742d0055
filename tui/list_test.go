package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T, count, width, height int, opts ...ModelOption) Model {
	t.Helper()
	m := NewList(count, func(i int, selected bool) string {
		return fmt.Sprintf("item %d", i)
	}, opts...)
	t.Cleanup(m.Close)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestListRendersOnlyVisibleWindow(t *testing.T) {
	m := newTestList(t, 10_000, 40, 11)

	view := m.View()
	assert.Contains(t, view, "item 0")
	assert.Contains(t, view, "item 9")
	assert.NotContains(t, view, "item 10")
	assert.Contains(t, view, "1/10000")

	// 10 list rows plus the footer.
	assert.Len(t, strings.Split(view, "\n"), 11)
}

func TestListEmpty(t *testing.T) {
	m := newTestList(t, 0, 40, 5)

	view := m.View()
	assert.Contains(t, view, "empty")
	assert.Equal(t, -1, m.Selected())
}

func TestListViewBeforeFirstSize(t *testing.T) {
	m := NewList(10, func(i int, selected bool) string { return "x" })
	defer m.Close()

	assert.Equal(t, "", m.View())
}

func TestListSelectionFollowsKeys(t *testing.T) {
	m := newTestList(t, 100, 40, 11)

	for i := 0; i < 3; i++ {
		updated, _ := m.Update(keyMsg(tea.KeyDown))
		m = updated.(Model)
	}
	assert.Equal(t, 3, m.Selected())

	updated, _ := m.Update(keyMsg(tea.KeyUp))
	m = updated.(Model)
	assert.Equal(t, 2, m.Selected())

	// Selection never leaves the list.
	for i := 0; i < 10; i++ {
		updated, _ = m.Update(keyMsg(tea.KeyUp))
		m = updated.(Model)
	}
	assert.Equal(t, 0, m.Selected())
}

func TestListEndJumpsToLastItem(t *testing.T) {
	m := newTestList(t, 500, 40, 11)

	updated, _ := m.Update(keyMsg(tea.KeyEnd))
	m = updated.(Model)

	assert.Equal(t, 499, m.Selected())
	view := m.View()
	assert.Contains(t, view, "item 499")
	assert.Contains(t, view, "500/500")

	updated, _ = m.Update(keyMsg(tea.KeyHome))
	m = updated.(Model)
	assert.Equal(t, 0, m.Selected())
	assert.Contains(t, m.View(), "item 0")
}

func TestListSelectionScrollsIntoView(t *testing.T) {
	m := newTestList(t, 100, 40, 11)

	// Walk the selection past the bottom of the 10-row viewport.
	for i := 0; i < 15; i++ {
		updated, _ := m.Update(keyMsg(tea.KeyDown))
		m = updated.(Model)
	}
	require.Equal(t, 15, m.Selected())

	view := m.View()
	assert.Contains(t, view, "item 15")
	assert.NotContains(t, view, "item 4")
}

func TestListWheelScrollsWithoutMovingSelection(t *testing.T) {
	m := newTestList(t, 100, 40, 11)

	updated, _ := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m = updated.(Model)

	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, float32(wheelLines), m.surface.ScrollOffset())

	updated, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	m = updated.(Model)
	assert.Equal(t, float32(0), m.surface.ScrollOffset())
}

func TestListPageKeys(t *testing.T) {
	m := newTestList(t, 100, 40, 11)

	updated, _ := m.Update(keyMsg(tea.KeyPgDown))
	m = updated.(Model)
	assert.Equal(t, float32(10), m.surface.ScrollOffset())

	updated, _ = m.Update(keyMsg(tea.KeyPgUp))
	m = updated.(Model)
	assert.Equal(t, float32(0), m.surface.ScrollOffset())
}

func TestListVariableItemLines(t *testing.T) {
	lines := func(i int) int {
		if i == 0 {
			return 3
		}
		return 1
	}
	m := NewList(10, func(i int, selected bool) string {
		if i == 0 {
			return "first\nsecond\nthird"
		}
		return fmt.Sprintf("item %d", i)
	}, WithItemLines(lines))
	defer m.Close()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 7})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "first")
	assert.Contains(t, view, "third")
	assert.Contains(t, view, "item 1")
}

func TestListSetItemCountClampsSelection(t *testing.T) {
	m := newTestList(t, 100, 40, 11)

	updated, _ := m.Update(keyMsg(tea.KeyEnd))
	m = updated.(Model)
	require.Equal(t, 99, m.Selected())

	m.SetItemCount(5)
	assert.Equal(t, 4, m.Selected())

	m.SetItemCount(0)
	assert.Equal(t, -1, m.Selected())
}
