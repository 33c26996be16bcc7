package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/georgemunganga/aeroparts-backend/internal/modules/catalog"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultKey is the storage key of a cart that is not tied to a session.
const DefaultKey = "cart"

// Listener receives a copy of the items after every mutation.
type Listener func(items []Item)

type subscription struct {
	id int
	fn Listener
}

// Store holds one shopper's cart and mirrors it to Storage after every
// mutation. Mutations are applied, persisted and announced in call order.
// Listeners run after the store is unlocked and may read it, but must not
// mutate it.
//
// The store does not check quantities against stock unless asked to
// through AddWithin.
type Store struct {
	mu        sync.Mutex
	notifyMu  sync.Mutex
	items     []Item
	storage   Storage
	key       string
	log       logrus.FieldLogger
	listeners []subscription
	nextID    int
}

// NewStore rehydrates the cart saved under key. A missing entry gives an
// empty cart, and so does an unreadable one, after a warning. Saved lines
// repeating a part id are merged into the first of them.
func NewStore(ctx context.Context, storage Storage, key string, log logrus.FieldLogger) *Store {
	s := &Store{
		items:   []Item{},
		storage: storage,
		key:     key,
		log:     log.WithField("key", key),
	}

	raw, err := storage.Load(ctx, key)
	switch {
	case errors.Is(err, ErrNotFound):
		return s
	case err != nil:
		s.log.WithError(err).Warn("loading cart failed, starting empty")
		return s
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.WithError(err).Warn("stored cart is corrupt, starting empty")
		return s
	}
	merged := mergeLines(items)
	if len(merged) != len(items) {
		s.log.WithField("lines", len(items)-len(merged)).Warn("stored cart repeats parts, merged")
	}
	s.items = merged
	return s
}

// mergeLines folds lines with the same part id into the first one, summing
// quantities and keeping first-seen order.
func mergeLines(items []Item) []Item {
	out := make([]Item, 0, len(items))
	index := make(map[string]int, len(items))
	for _, it := range items {
		if i, ok := index[it.Part.ID]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		index[it.Part.ID] = len(out)
		out = append(out, it)
	}
	return out
}

// AddToCart increments the line for part.ID by quantity, or appends a new
// line holding a snapshot of part.
func (s *Store) AddToCart(ctx context.Context, part catalog.Part, quantity int) {
	s.apply(ctx, func() bool {
		s.add(part, quantity)
		return true
	})
}

// AddWithin is AddToCart guarded by a limit: the add happens only if the
// resulting quantity of the line stays at or below limit. It returns that
// resulting quantity and whether the add happened, checked and applied
// under one lock.
func (s *Store) AddWithin(ctx context.Context, part catalog.Part, quantity, limit int) (int, bool) {
	var want int
	ok := s.apply(ctx, func() bool {
		want = s.quantity(part.ID) + quantity
		if want > limit {
			return false
		}
		s.add(part, quantity)
		return true
	})
	return want, ok
}

// RemoveFromCart drops the line for partID if there is one.
func (s *Store) RemoveFromCart(ctx context.Context, partID string) {
	s.apply(ctx, func() bool { return s.remove(partID) })
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero
// or less removes the line. Unknown ids are ignored.
func (s *Store) UpdateQuantity(ctx context.Context, partID string, quantity int) {
	s.apply(ctx, func() bool {
		if quantity <= 0 {
			return s.remove(partID)
		}
		i := s.indexOf(partID)
		if i < 0 {
			return false
		}
		s.items[i].Quantity = quantity
		return true
	})
}

func (s *Store) ClearCart(ctx context.Context) {
	s.apply(ctx, func() bool {
		s.items = []Item{}
		return true
	})
}

// Items returns a copy of the lines in the order they were first added.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItems()
}

// Quantity of partID in the cart, zero when absent.
func (s *Store) Quantity(partID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quantity(partID)
}

func (s *Store) Total() float64 { return Total(s.Items()) }

func (s *Store) ItemCount() int { return ItemCount(s.Items()) }

func (s *Store) Snapshot() Snapshot { return snapshotOf(s.Items()) }

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) indexOf(partID string) int {
	for i, it := range s.items {
		if it.Part.ID == partID {
			return i
		}
	}
	return -1
}

func (s *Store) quantity(partID string) int {
	if i := s.indexOf(partID); i >= 0 {
		return s.items[i].Quantity
	}
	return 0
}

func (s *Store) add(part catalog.Part, quantity int) {
	if i := s.indexOf(part.ID); i >= 0 {
		s.items[i].Quantity += quantity
		return
	}
	s.items = append(s.items, Item{Part: part, Quantity: quantity})
}

func (s *Store) remove(partID string) bool {
	i := s.indexOf(partID)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return true
}

func (s *Store) copyItems() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// apply runs change under the lock. When change reports that it modified
// the cart, the items are persisted and then announced. notifyMu is taken
// before mu is released, so announcements keep mutation order while
// listeners run unlocked.
func (s *Store) apply(ctx context.Context, change func() bool) bool {
	s.mu.Lock()
	if !change() {
		s.mu.Unlock()
		return false
	}
	s.persist(ctx)
	items := s.copyItems()
	listeners := make([]Listener, len(s.listeners))
	for i, sub := range s.listeners {
		listeners[i] = sub.fn
	}
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, fn := range listeners {
		own := make([]Item, len(items))
		copy(own, items)
		fn(own)
	}
	return true
}

// persist saves the current items. Save failures are logged only; the
// in-memory cart stays authoritative.
func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.log.WithError(err).Error("encoding cart failed")
		return
	}
	if err := s.storage.Save(ctx, s.key, raw); err != nil {
		s.log.WithError(err).Error("saving cart failed")
	}
}
