// Package ui is the Bubble Tea front end for the closet.
//
//   - AppModel: root model, handles quit and delegates to ClosetView
//   - ClosetView: title, status line, buttons and the item list
//   - KeyMap: bindings enabled per closet state, rendered by bubbles/help
//   - Styles: shared lipgloss styles
package ui
