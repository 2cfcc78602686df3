package store

import "sync"

// Record is an entity the store can hold. Clone must return a deep copy.
type Record[T any] interface {
	GetID() string
	Clone() T
}

// Collection is the per-entity view of the store. Reads and writes copy, so
// callers never share memory with stored rows.
type Collection[T any] interface {
	Get(id string) (T, bool)
	List() []T
	Upsert(v T)
	Len() int
}

// Table is an insertion-ordered, mutex-guarded Collection.
type Table[T Record[T]] struct {
	mu    sync.RWMutex
	rows  []T
	index map[string]int
}

func NewTable[T Record[T]](rows ...T) *Table[T] {
	t := &Table[T]{index: make(map[string]int, len(rows))}
	for _, r := range rows {
		t.Upsert(r)
	}
	return t
}

func (t *Table[T]) Get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.rows[i].Clone(), true
}

func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Clone()
	}
	return out
}

// Upsert replaces the row with the same id in place, or appends.
func (t *Table[T]) Upsert(v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := v.GetID()
	if i, ok := t.index[id]; ok {
		t.rows[i] = v.Clone()
		return
	}
	t.index[id] = len(t.rows)
	t.rows = append(t.rows, v.Clone())
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
