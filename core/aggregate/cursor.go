package aggregate

import "context"

// Cursor is an immutable progress marker over a fixed list of mid-level entities.
// Advancing a cursor returns a new value; the original is never modified.
type Cursor[M any] struct {
	entities []M
	drained  int
}

// NewCursor creates a cursor positioned before the first entity.
func NewCursor[M any](entities []M) Cursor[M] {
	return Cursor[M]{entities: entities}
}

// Len returns the total number of entities.
func (c Cursor[M]) Len() int {
	return len(c.entities)
}

// Drained returns how many entities have been consumed.
func (c Cursor[M]) Drained() int {
	return c.drained
}

// Exhausted reports whether every entity has been consumed.
func (c Cursor[M]) Exhausted() bool {
	return c.drained >= len(c.entities)
}

// Entities returns a copy of the full entity list.
func (c Cursor[M]) Entities() []M {
	out := make([]M, len(c.entities))
	copy(out, c.entities)
	return out
}

// Next returns the next batch of at most batchSize entities and the advanced cursor.
// The batch is empty once the cursor is exhausted.
func (c Cursor[M]) Next(batchSize int) ([]M, Cursor[M]) {
	if batchSize <= 0 || c.Exhausted() {
		return nil, c
	}
	end := c.drained + batchSize
	if end > len(c.entities) {
		end = len(c.entities)
	}
	batch := c.entities[c.drained:end]
	return batch, Cursor[M]{entities: c.entities, drained: end}
}

// DrainNext fetches the leaf records of the next batch concurrently and returns them
// concatenated in entity order, together with the advanced cursor. Entities whose fetch
// fails contribute nothing. An exhausted cursor is returned unchanged with no records.
func DrainNext[M, L any](ctx context.Context, c Cursor[M], batchSize, concurrency int, fetch FetchFunc[M, L], onErr func(M, error)) ([]L, Cursor[M]) {
	batch, next := c.Next(batchSize)
	if len(batch) == 0 {
		return nil, c
	}
	return Flatten(FanOut(ctx, batch, concurrency, fetch, onErr)), next
}
