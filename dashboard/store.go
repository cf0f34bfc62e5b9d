// Package dashboard implements the widget state machine every dashboard
// feature shares: an ordered in-memory record collection with mode-gated
// create/update/delete/toggle mutations and a read-only derived view.
package dashboard

// Item is a widget record. Identity is assigned at creation and never
// changes.
type Item interface {
	ItemID() string
}

// Config parametrizes a Store for one widget kind.
type Config[T Item] struct {
	// Kind names the widget ("notes", "todos", ...). Used in messages.
	Kind string

	// Validate rejects a record before create/update commits it.
	// Nil means no validation.
	Validate func(T) error

	// View derives the rendered projection from the raw items. The input
	// slice is already a copy and may be sorted or filtered in place.
	// Nil means insertion order.
	View func([]T) []T

	// Policy gates mutations by mode.
	Policy Policy
}

// Store holds the records of one widget kind for one session. Mutations
// never modify a record or the backing slice in place; each one installs a
// freshly built slice, so previously returned snapshots stay valid.
//
// A Store is not safe for concurrent use; the owning session serializes
// access.
type Store[T Item] struct {
	cfg   Config[T]
	items []T
}

func NewStore[T Item](cfg Config[T]) *Store[T] {
	return &Store[T]{cfg: cfg}
}

func (s *Store[T]) Kind() string { return s.cfg.Kind }

func (s *Store[T]) Len() int { return len(s.items) }

// Items returns the records in insertion order.
func (s *Store[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// View returns the derived projection. It is recomputed on every call so a
// mutated store can never serve a stale rendering.
func (s *Store[T]) View() []T {
	out := s.Items()
	if s.cfg.View != nil {
		out = s.cfg.View(out)
	}
	return out
}

func (s *Store[T]) Get(id string) (T, bool) {
	for _, it := range s.items {
		if it.ItemID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Replace installs the given records wholesale. Used for the initial load
// from the document store; it bypasses the mode gate and validation.
func (s *Store[T]) Replace(items []T) {
	next := make([]T, len(items))
	copy(next, items)
	s.items = next
}

// Create validates the record and appends it. The caller assigns the id
// and any timestamps before calling.
func (s *Store[T]) Create(role Role, item T) (T, error) {
	var zero T
	if !s.cfg.Policy.Allows(role, OpCreate) {
		return zero, ErrNotAllowed
	}
	if s.cfg.Validate != nil {
		if err := s.cfg.Validate(item); err != nil {
			return zero, err
		}
	}
	next := make([]T, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, item)
	s.items = next
	return item, nil
}

// Update replaces the record with the given id by apply's result, which
// must keep the same id. The replacement is validated like a create.
func (s *Store[T]) Update(role Role, id string, apply func(T) T) (T, error) {
	return s.mutate(role, OpUpdate, id, apply, true)
}

// Toggle is an update that flips a boolean field and is separately gated:
// patient mode may toggle widgets it cannot otherwise edit. No validation
// runs because only the caller-controlled flag changes.
func (s *Store[T]) Toggle(role Role, id string, flip func(T) T) (T, error) {
	return s.mutate(role, OpToggle, id, flip, false)
}

func (s *Store[T]) mutate(role Role, op Op, id string, apply func(T) T, validate bool) (T, error) {
	var zero T
	if !s.cfg.Policy.Allows(role, op) {
		return zero, ErrNotAllowed
	}
	idx := s.index(id)
	if idx < 0 {
		return zero, ErrNotFound
	}
	replacement := apply(s.items[idx])
	if validate && s.cfg.Validate != nil {
		if err := s.cfg.Validate(replacement); err != nil {
			return zero, err
		}
	}
	next := make([]T, len(s.items))
	copy(next, s.items)
	next[idx] = replacement
	s.items = next
	return replacement, nil
}

// Delete removes exactly one record by id.
func (s *Store[T]) Delete(role Role, id string) error {
	if !s.cfg.Policy.Allows(role, OpDelete) {
		return ErrNotAllowed
	}
	idx := s.index(id)
	if idx < 0 {
		return ErrNotFound
	}
	next := make([]T, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	s.items = next
	return nil
}

func (s *Store[T]) index(id string) int {
	for i, it := range s.items {
		if it.ItemID() == id {
			return i
		}
	}
	return -1
}
