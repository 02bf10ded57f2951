package aggregate

// OrderedMap is an insertion-ordered map from identity key to record.
// It is not safe for concurrent use; the engine guards it with its own lock.
type OrderedMap[T any] struct {
	keys  []string
	index map[string]int
	items []T
}

// NewOrderedMap creates an empty ordered map.
func NewOrderedMap[T any]() *OrderedMap[T] {
	return &OrderedMap[T]{
		index: make(map[string]int),
	}
}

// Len returns the number of records held.
func (m *OrderedMap[T]) Len() int {
	return len(m.keys)
}

// Has reports whether key is present.
func (m *OrderedMap[T]) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Get returns the record stored under key.
func (m *OrderedMap[T]) Get(key string) (T, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero T
		return zero, false
	}
	return m.items[i], true
}

// Insert appends value under key. It returns false and leaves the map untouched if
// the key is already present: the first-seen record wins.
func (m *OrderedMap[T]) Insert(key string, value T) bool {
	if _, ok := m.index[key]; ok {
		return false
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.items = append(m.items, value)
	return true
}

// Replace overwrites the record under an existing key, keeping its position.
// It returns false if the key is absent.
func (m *OrderedMap[T]) Replace(key string, value T) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	m.items[i] = value
	return true
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[T]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns a copy of the records in insertion order.
func (m *OrderedMap[T]) Values() []T {
	return m.Prefix(len(m.items))
}

// Prefix returns a copy of the first n records. n is clamped to [0, Len].
func (m *OrderedMap[T]) Prefix(n int) []T {
	if n > len(m.items) {
		n = len(m.items)
	}
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	copy(out, m.items[:n])
	return out
}

// Merge folds incoming into existing, keyed by keyFn, and returns the number of records
// that were new. Records already present are ignored. A record with an empty key is
// stored under a synthetic key and is therefore always new.
func Merge[T any](existing *OrderedMap[T], incoming []T, keyFn KeyFunc[T]) int {
	added := 0
	for _, item := range incoming {
		key := keyFn(item)
		if key == "" {
			key = SyntheticKey()
		}
		if existing.Insert(key, item) {
			added++
		}
	}
	return added
}

// Dedup returns items with later duplicates removed, preserving first-seen order.
func Dedup[T any](items []T, keyFn KeyFunc[T]) []T {
	m := NewOrderedMap[T]()
	Merge(m, items, keyFn)
	return m.Values()
}
