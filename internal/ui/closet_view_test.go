package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"closet/internal/closet"
)

func newTestView() *ClosetView {
	return NewClosetView(closet.NewManager(closet.WithIDGenerator(closet.NewSequenceIDs(1))))
}

func TestClosetView_InitialRender(t *testing.T) {
	v := newTestView()
	out := v.View()

	for _, want := range []string{Title, DefaultStatus, LabelOpen} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view output", want)
		}
	}
	for _, absent := range []string{LabelAdd, LabelClose, ItemsHeader, EmptyClosetMessage} {
		if strings.Contains(out, absent) {
			t.Errorf("did not expect %q while closed", absent)
		}
	}
	if got := len(v.Controls()); got != 1 {
		t.Errorf("expected 1 control while closed, got %d", got)
	}
}

func TestClosetView_OpenShowsControlsAndEmptyList(t *testing.T) {
	v := newTestView()

	v.Update(keyMsg("enter"))

	if !v.Closet().IsOpen {
		t.Fatal("expected closet open after pressing Open")
	}
	out := v.View()
	for _, want := range []string{closet.StatusOpened, LabelAdd, LabelClose, ItemsHeader, EmptyClosetMessage} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view output", want)
		}
	}
	if strings.Contains(out, LabelOpen) {
		t.Error("did not expect Open Closet button while open")
	}
	if strings.Contains(out, DefaultStatus) {
		t.Error("placeholder status should be replaced")
	}
}

func TestClosetView_AddRendersRow(t *testing.T) {
	v := newTestView()
	v.Update(keyMsg("o"))
	v.Update(keyMsg("a"))
	v.Update(keyMsg("a"))

	c := v.Closet()
	if len(c.Clothes) != 2 {
		t.Fatalf("expected 2 items, got %d", len(c.Clothes))
	}
	out := v.View()
	if !strings.Contains(out, "New T-Shirt - top (casual, blue)") {
		t.Error("expected item row in view output")
	}
	if n := strings.Count(out, LabelRemove); n != 2 {
		t.Errorf("expected 2 Remove buttons, got %d", n)
	}
	if strings.Contains(out, EmptyClosetMessage) {
		t.Error("did not expect empty placeholder with items")
	}
	if !strings.Contains(out, closet.StatusAdded) {
		t.Error("expected added status")
	}
}

func TestClosetView_RemoveFocusedRow(t *testing.T) {
	v := newTestView()
	v.Update(keyMsg("o"))
	v.Update(keyMsg("a"))
	v.Update(keyMsg("a"))
	first := v.Closet().Clothes[0].ID
	second := v.Closet().Clothes[1].ID

	// Add, Close, Remove(first), Remove(second): focus the first row.
	v.Update(keyMsg("tab"))
	v.Update(keyMsg("tab"))
	if f := v.Focused(); f.Kind != ControlRemove || f.ItemID != first {
		t.Fatalf("expected focus on first remove, got %+v", f)
	}

	v.Update(keyMsg("x"))

	c := v.Closet()
	if len(c.Clothes) != 1 || c.Clothes[0].ID != second {
		t.Fatalf("expected only second item left, got %+v", c.Clothes)
	}
	if !strings.Contains(v.View(), closet.StatusRemoved) {
		t.Error("expected removed status")
	}
	if f := v.Focused(); f.Kind != ControlRemove || f.ItemID != second {
		t.Errorf("expected focus to move to remaining row, got %+v", f)
	}
}

func TestClosetView_RemoveLastRowClampsFocus(t *testing.T) {
	v := newTestView()
	v.Update(keyMsg("o"))
	v.Update(keyMsg("a"))
	v.Update(keyMsg("shift+tab")) // wraps to the last control

	if f := v.Focused(); f.Kind != ControlRemove {
		t.Fatalf("expected remove focused, got %+v", f)
	}
	v.Update(keyMsg("enter"))

	if len(v.Closet().Clothes) != 0 {
		t.Fatal("expected empty closet")
	}
	if v.Focus() != 1 {
		t.Errorf("expected focus clamped to Close, got %d", v.Focus())
	}
	if !strings.Contains(v.View(), EmptyClosetMessage) {
		t.Error("expected empty placeholder")
	}
}

func TestClosetView_XIgnoredOffRow(t *testing.T) {
	v := newTestView()
	v.Update(keyMsg("o"))
	v.Update(keyMsg("a"))

	v.Update(keyMsg("x")) // focus is on Add

	if len(v.Closet().Clothes) != 1 {
		t.Error("x should only remove when a row is focused")
	}
}

func TestClosetView_CloseHidesList(t *testing.T) {
	v := newTestView()
	v.Update(keyMsg("o"))
	v.Update(keyMsg("a"))
	v.Update(keyMsg("c"))

	c := v.Closet()
	if c.IsOpen {
		t.Fatal("expected closet closed")
	}
	if len(c.Clothes) != 1 {
		t.Error("closing should keep items")
	}
	out := v.View()
	if strings.Contains(out, ItemsHeader) || strings.Contains(out, LabelRemove) {
		t.Error("list should be hidden while closed")
	}
	if !strings.Contains(out, closet.StatusClosed) || !strings.Contains(out, LabelOpen) {
		t.Error("expected closed status and Open button")
	}
	if v.Focus() != 0 {
		t.Errorf("expected focus 0, got %d", v.Focus())
	}
}

func TestClosetView_DisabledShortcutsIgnored(t *testing.T) {
	v := newTestView()

	v.Update(keyMsg("a"))
	v.Update(keyMsg("c"))

	if len(v.Closet().Clothes) != 0 {
		t.Error("add should not fire while closed")
	}
	if _, ok := v.Manager.Status(); ok {
		t.Error("no operation should have run")
	}
}

func TestClosetView_NavigationWraps(t *testing.T) {
	v := newTestView()
	v.Update(keyMsg("o"))

	v.Update(keyMsg("down"))
	if v.Focus() != 1 {
		t.Errorf("after down: expected 1, got %d", v.Focus())
	}
	v.Update(keyMsg("j"))
	if v.Focus() != 0 {
		t.Errorf("after j: expected wrap to 0, got %d", v.Focus())
	}
	v.Update(keyMsg("k"))
	if v.Focus() != 1 {
		t.Errorf("after k: expected wrap to 1, got %d", v.Focus())
	}
}

func TestClosetView_FollowsExternalChanges(t *testing.T) {
	m := closet.NewManager(closet.WithIDGenerator(closet.NewSequenceIDs(1)))
	v := NewClosetView(m)

	m.Open()
	m.AddItem(m.NewItem())

	if !v.Closet().IsOpen || len(v.Closet().Clothes) != 1 {
		t.Fatalf("view did not follow manager: %+v", v.Closet())
	}

	v.Close()
	m.Close()
	if !v.Closet().IsOpen {
		t.Error("closed view should stop following the manager")
	}
}

func TestClosetView_NarrowTerminalTruncatesRows(t *testing.T) {
	v := newTestView()
	v.Update(keyMsg("o"))
	v.Update(keyMsg("a"))
	v.Update(tea.WindowSizeMsg{Width: rowOverhead + 6, Height: 20})

	out := v.View()
	if strings.Contains(out, "New T-Shirt - top") {
		t.Error("expected row text truncated in a narrow terminal")
	}
	if !strings.Contains(out, "New T…") {
		t.Error("expected ellipsis-truncated row")
	}
	if !strings.Contains(out, LabelRemove) {
		t.Error("Remove button should survive truncation")
	}
}
