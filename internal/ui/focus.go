package ui

// FocusRing tracks which of n controls has focus and rotates through them.
// The control count changes as the closet changes, so callers pass n on
// every call.
type FocusRing struct {
	Index int
}

// Next moves focus forward, wrapping at the end.
func (f *FocusRing) Next(n int) int {
	if n == 0 {
		return f.set(0)
	}
	return f.set((f.Index + 1) % n)
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusRing) Prev(n int) int {
	if n == 0 {
		return f.set(0)
	}
	return f.set((f.Index - 1 + n) % n)
}

// Clamp keeps focus on an existing control after the count shrank.
func (f *FocusRing) Clamp(n int) int {
	i := f.Index
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return f.set(i)
}

// Reset puts focus on the first control.
func (f *FocusRing) Reset() int {
	return f.set(0)
}

func (f *FocusRing) set(i int) int {
	f.Index = i
	return i
}
