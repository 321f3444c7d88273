package closet

import (
	"context"
	"sort"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Status messages shown after each operation.
const (
	StatusOpened  = "Closet is now open !"
	StatusClosed  = "Closet is now closed !"
	StatusAdded   = "Added a new clothing item !"
	StatusRemoved = "Removed a clothing item !"
)

// Op identifies which operation produced a Change.
type Op string

const (
	OpOpen   Op = "open"
	OpClose  Op = "close"
	OpAdd    Op = "add"
	OpRemove Op = "remove"
)

// Change is delivered to subscribers after a mutation commits.
type Change struct {
	Op     Op
	ItemID int64 // set for OpAdd and OpRemove
	Closet Closet
	Status string
}

// Listener receives committed changes.
type Listener func(Change)

// Manager owns a Closet and the latest status message.
// Safe for concurrent use. Mutations are serialized together with their
// notifications, so listeners see changes in commit order. Listeners run on
// the mutating goroutine and must not mutate the Manager themselves.
type Manager struct {
	// commitMu is held from commit through notify; mu guards the state.
	commitMu  sync.Mutex
	mu        sync.Mutex
	closet    Closet
	status    string
	hasStatus bool

	ids    IDGenerator
	tracer oteltrace.Tracer

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextSub     int
}

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator replaces the default clock-based id source.
func WithIDGenerator(g IDGenerator) Option {
	return func(m *Manager) { m.ids = g }
}

// WithTracer sets the tracer used for operation spans. Defaults to the
// global provider's tracer.
func WithTracer(t oteltrace.Tracer) Option {
	return func(m *Manager) { m.tracer = t }
}

// NewManager returns a Manager with a closed, empty closet and no status.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.ids == nil {
		m.ids = NewClockIDs(nil)
	}
	if m.tracer == nil {
		m.tracer = otel.Tracer("closet/internal/closet")
	}
	return m
}

// Open marks the closet open. Calling it on an open closet only re-sets the status.
func (m *Manager) Open() {
	m.OpenContext(context.Background())
}

// OpenContext is Open with the operation span parented on ctx.
func (m *Manager) OpenContext(ctx context.Context) {
	m.mutate(ctx, OpOpen, func() (int64, string) {
		m.closet.IsOpen = true
		return 0, StatusOpened
	})
}

// Close marks the closet closed. Idempotent like Open.
func (m *Manager) Close() {
	m.CloseContext(context.Background())
}

// CloseContext is Close with the operation span parented on ctx.
func (m *Manager) CloseContext(ctx context.Context) {
	m.mutate(ctx, OpClose, func() (int64, string) {
		m.closet.IsOpen = false
		return 0, StatusClosed
	})
}

// NewItem builds the item the add control creates: a blue casual t-shirt
// with a fresh id.
func (m *Manager) NewItem() ClothingItem {
	return ClothingItem{
		ID:    m.ids.NextID(),
		Name:  "New T-Shirt",
		Type:  ItemType{Category: CategoryTop, Subcategory: "t-shirt"},
		Style: StyleCasual,
		Color: "blue",
	}
}

// AddItem appends item to the closet and returns it as stored. The closet
// does not have to be open. An item whose id is zero or already present is
// given a fresh id so ids stay unique.
func (m *Manager) AddItem(item ClothingItem) ClothingItem {
	return m.AddItemContext(context.Background(), item)
}

// AddItemContext is AddItem with the operation span parented on ctx.
func (m *Manager) AddItemContext(ctx context.Context, item ClothingItem) ClothingItem {
	m.mutate(ctx, OpAdd, func() (int64, string) {
		if item.ID == 0 || m.closet.IndexOf(item.ID) >= 0 {
			item.ID = m.freshID()
		}
		m.closet.Clothes = append(m.closet.Clothes, item)
		return item.ID, StatusAdded
	})
	return item
}

// RemoveItem drops the item with the given id. A missing id leaves the
// closet as it was; the status is set either way.
func (m *Manager) RemoveItem(id int64) {
	m.RemoveItemContext(context.Background(), id)
}

// RemoveItemContext is RemoveItem with the operation span parented on ctx.
func (m *Manager) RemoveItemContext(ctx context.Context, id int64) {
	m.mutate(ctx, OpRemove, func() (int64, string) {
		if i := m.closet.IndexOf(id); i >= 0 {
			clothes := make([]ClothingItem, 0, len(m.closet.Clothes)-1)
			clothes = append(clothes, m.closet.Clothes[:i]...)
			clothes = append(clothes, m.closet.Clothes[i+1:]...)
			m.closet.Clothes = clothes
		}
		return id, StatusRemoved
	})
}

// Snapshot returns a copy of the closet that callers may keep or modify.
func (m *Manager) Snapshot() Closet {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closet.clone()
}

// Status returns the latest status message; ok is false until the first
// operation runs.
func (m *Manager) Status() (msg string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status, m.hasStatus
}

// Subscribe registers fn to run after every committed change, in
// subscription order. The returned func removes it; calling it twice is fine.
func (m *Manager) Subscribe(fn Listener) (unsubscribe func()) {
	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.listeners[id] = fn
	return func() {
		m.listenersMu.Lock()
		defer m.listenersMu.Unlock()
		delete(m.listeners, id)
	}
}

// freshID draws ids until one is unused. Caller holds m.mu.
func (m *Manager) freshID() int64 {
	for {
		id := m.ids.NextID()
		if id != 0 && m.closet.IndexOf(id) < 0 {
			return id
		}
	}
}

// mutate runs apply under the state lock, records the status, and then
// notifies listeners outside the state lock but inside commitMu, so the next
// mutation cannot commit before this one is delivered.
func (m *Manager) mutate(ctx context.Context, op Op, apply func() (itemID int64, status string)) {
	_, span := m.tracer.Start(ctx, "closet."+string(op))
	defer span.End()

	m.commitMu.Lock()
	defer m.commitMu.Unlock()

	m.mu.Lock()
	itemID, status := apply()
	m.status = status
	m.hasStatus = true
	change := Change{Op: op, ItemID: itemID, Closet: m.closet.clone(), Status: status}
	m.mu.Unlock()

	span.SetAttributes(
		attribute.String("closet.op", string(op)),
		attribute.Bool("closet.open", change.Closet.IsOpen),
		attribute.Int("closet.items", len(change.Closet.Clothes)),
	)
	if itemID != 0 {
		span.SetAttributes(attribute.Int64("closet.item_id", itemID))
	}

	m.notify(change)
}

func (m *Manager) notify(c Change) {
	m.listenersMu.Lock()
	ids := make([]int, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]Listener, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m.listeners[id])
	}
	m.listenersMu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}
