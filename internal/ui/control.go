package ui

// Button labels.
const (
	LabelOpen   = "Open Closet"
	LabelAdd    = "Add Clothing Item"
	LabelClose  = "Close Closet"
	LabelRemove = "Remove"
)

// ControlKind identifies what a focusable button does.
type ControlKind int

const (
	ControlOpen ControlKind = iota
	ControlAdd
	ControlClose
	ControlRemove
)

func (k ControlKind) String() string {
	switch k {
	case ControlOpen:
		return "Open"
	case ControlAdd:
		return "Add"
	case ControlClose:
		return "Close"
	case ControlRemove:
		return "Remove"
	default:
		return "Unknown"
	}
}

// Control is one focusable button. ItemID is set for ControlRemove only.
type Control struct {
	Kind   ControlKind
	ItemID int64
}

// Label returns the button text.
func (c Control) Label() string {
	switch c.Kind {
	case ControlOpen:
		return LabelOpen
	case ControlAdd:
		return LabelAdd
	case ControlClose:
		return LabelClose
	default:
		return LabelRemove
	}
}
