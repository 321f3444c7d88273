package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"closet/internal/closet"
	"closet/internal/ui/textutil"
)

// Fixed text of the closet screen.
const (
	Title              = "Closet Manager"
	DefaultStatus      = "Let's manage your closet!"
	ItemsHeader        = "Clothing Items:"
	EmptyClosetMessage = "No clothing items in the closet."
)

// rowOverhead is the width a list row spends outside the item text: box
// border, padding and margin, the bullet, the gap and the Remove button.
const rowOverhead = 8 + 2 + 2 + 12

// ClosetView renders a closet.Manager and turns key presses into manager
// operations. It keeps a copy of the closet that is refreshed by a manager
// subscription, so it redraws from committed state only.
type ClosetView struct {
	Manager *closet.Manager
	Keys    KeyMap

	closet      closet.Closet
	status      string
	hasStatus   bool
	focus       FocusRing
	width       int
	help        help.Model
	unsubscribe func()
}

// Ensure ClosetView implements View.
var _ View = (*ClosetView)(nil)

// NewClosetView creates a view bound to m and subscribes to its changes.
func NewClosetView(m *closet.Manager) *ClosetView {
	v := &ClosetView{
		Manager: m,
		Keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	v.help.Styles.ShortKey = Styles.ButtonFocused
	v.help.Styles.ShortDesc = Styles.Hint
	v.help.Styles.ShortSeparator = Styles.Hint

	v.closet = m.Snapshot()
	v.status, v.hasStatus = m.Status()
	v.unsubscribe = m.Subscribe(v.apply)
	v.sync()
	return v
}

// Close detaches the view from its manager.
func (v *ClosetView) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// apply is the manager listener.
func (v *ClosetView) apply(c closet.Change) {
	v.closet = c.Closet
	v.status = c.Status
	v.hasStatus = true
	v.sync()
}

// sync re-enables bindings and clamps focus after the closet changed.
func (v *ClosetView) sync() {
	v.Keys.SetState(v.closet.IsOpen, len(v.closet.Clothes))
	v.focus.Clamp(len(v.Controls()))
}

// Closet returns the closet as last rendered.
func (v *ClosetView) Closet() closet.Closet {
	return v.closet
}

// Focus returns the index of the focused control in Controls.
func (v *ClosetView) Focus() int {
	return v.focus.Index
}

// Focused returns the focused control.
func (v *ClosetView) Focused() Control {
	return v.Controls()[v.focus.Index]
}

// Controls lists the buttons in display order: one open button while
// closed; add, close and one remove per item while open.
func (v *ClosetView) Controls() []Control {
	if !v.closet.IsOpen {
		return []Control{{Kind: ControlOpen}}
	}
	out := make([]Control, 0, 2+len(v.closet.Clothes))
	out = append(out, Control{Kind: ControlAdd}, Control{Kind: ControlClose})
	for _, item := range v.closet.Clothes {
		out = append(out, Control{Kind: ControlRemove, ItemID: item.ID})
	}
	return out
}

// Press runs the operation behind c.
func (v *ClosetView) Press(c Control) {
	switch c.Kind {
	case ControlOpen:
		v.Manager.Open()
	case ControlAdd:
		v.Manager.AddItem(v.Manager.NewItem())
	case ControlClose:
		v.Manager.Close()
	case ControlRemove:
		v.Manager.RemoveItem(c.ItemID)
	}
}

// Init implements View.
func (v *ClosetView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ClosetView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.help.Width = msg.Width
	case tea.KeyMsg:
		n := len(v.Controls())
		switch {
		case key.Matches(msg, v.Keys.Next):
			v.focus.Next(n)
		case key.Matches(msg, v.Keys.Prev):
			v.focus.Prev(n)
		case key.Matches(msg, v.Keys.Activate):
			v.Press(v.Focused())
		case key.Matches(msg, v.Keys.Open):
			v.Press(Control{Kind: ControlOpen})
			v.focus.Reset()
		case key.Matches(msg, v.Keys.Add):
			v.Press(Control{Kind: ControlAdd})
		case key.Matches(msg, v.Keys.Close):
			v.Press(Control{Kind: ControlClose})
		case key.Matches(msg, v.Keys.Remove):
			if c := v.Focused(); c.Kind == ControlRemove {
				v.Press(c)
			}
		}
	}
	return v, nil
}

// View implements View.
func (v *ClosetView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(Title) + "\n")
	status := DefaultStatus
	if v.hasStatus {
		status = v.status
	}
	b.WriteString(Styles.Status.Render(status) + "\n\n")

	controls := v.Controls()
	if !v.closet.IsOpen {
		b.WriteString(v.renderButton(controls, 0))
	} else {
		b.WriteString(v.renderButton(controls, 0) + "  " + v.renderButton(controls, 1))
		b.WriteString("\n\n" + Styles.Section.Render(ItemsHeader) + "\n")
		if len(v.closet.Clothes) == 0 {
			b.WriteString(Styles.Empty.Render(EmptyClosetMessage))
		}
		col := v.rowWidth()
		for i, item := range v.closet.Clothes {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("• " + Styles.Item.Render(textutil.PadRight(item.String(), col)) + "  " +
				v.renderButton(controls, i+2))
		}
	}

	body := Styles.Box.Render(b.String())
	return body + "\n" + v.help.View(v.Keys)
}

// rowWidth is the column width of item text: the widest row, cut down to
// fit the terminal once its width is known.
func (v *ClosetView) rowWidth() int {
	col := 0
	for _, item := range v.closet.Clothes {
		col = max(col, textutil.Width(item.String()))
	}
	if v.width > 0 {
		col = max(min(col, v.width-rowOverhead), 1)
	}
	return col
}

func (v *ClosetView) renderButton(controls []Control, i int) string {
	c := controls[i]
	if i == v.focus.Index {
		return Styles.ButtonFocused.Render("[> " + c.Label() + " <]")
	}
	return Styles.Button.Render("[  " + c.Label() + "  ]")
}
