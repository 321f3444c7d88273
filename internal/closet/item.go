// Package closet holds the closet state and the operations that mutate it.
//
// A Manager owns one Closet and the last status message. Every mutation
// commits under the manager lock, then notifies subscribers with a Change
// carrying a snapshot of the new state.
package closet

import "fmt"

// Category is the broad kind of a clothing item.
type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
)

// Style is the look a clothing item belongs to.
type Style string

const (
	StyleSportswear Style = "sportswear"
	StyleChic       Style = "chic"
	StyleClassic    Style = "classic"
	StyleCasual     Style = "casual"
)

// ItemType pairs a fixed category with a free-text subcategory (e.g. "t-shirt").
type ItemType struct {
	Category    Category
	Subcategory string
}

// ClothingItem is one entry in the closet.
type ClothingItem struct {
	ID         int64
	Name       string
	Type       ItemType
	Style      Style
	Color      string
	IsFavorite bool
	Comment    string // empty = no comment
}

// String renders the item the way the list row shows it:
// "New T-Shirt - top (casual, blue)".
func (c ClothingItem) String() string {
	return fmt.Sprintf("%s - %s (%s, %s)", c.Name, c.Type.Category, c.Style, c.Color)
}

// Closet is the open/closed flag plus the items in insertion order.
type Closet struct {
	IsOpen  bool
	Clothes []ClothingItem
}

// clone returns a copy whose Clothes slice does not alias c's.
func (c Closet) clone() Closet {
	out := Closet{IsOpen: c.IsOpen}
	if len(c.Clothes) > 0 {
		out.Clothes = make([]ClothingItem, len(c.Clothes))
		copy(out.Clothes, c.Clothes)
	}
	return out
}

// IndexOf returns the position of the item with the given id, or -1.
func (c Closet) IndexOf(id int64) int {
	for i, item := range c.Clothes {
		if item.ID == id {
			return i
		}
	}
	return -1
}
