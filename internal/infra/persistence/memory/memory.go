// Package memory implements the repository contracts with in-process
// maps. It backs local development and handler tests, mirroring the
// observable semantics of the Firestore driver: generated string ids,
// server-side creation timestamps, not-found on update, idempotent
// delete.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// clock lets tests stamp deterministic creation times.
type clock func() time.Time

func defaultClock() time.Time {
	return time.Now().UTC()
}

type doc[T any] struct {
	val T
	seq int64
}

// collection is a tiny generic document table guarded by a mutex. seq
// preserves insertion order so listings are deterministic.
type collection[T any] struct {
	mu   sync.RWMutex
	docs map[string]*doc[T]
	now  clock
	seq  int64
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{
		docs: make(map[string]*doc[T]),
		now:  defaultClock,
	}
}

// insert stores a copy of val under a fresh id and returns the id.
// Callers must not hold the lock.
func (c *collection[T]) insert(val T) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := uuid.NewString()
	c.seq++
	c.docs[id] = &doc[T]{val: val, seq: c.seq}

	return id
}

// snapshot returns value copies of all documents sorted by insertion
// order. Copying under the read lock keeps the result safe to read
// while concurrent updates mutate the live documents.
func (c *collection[T]) snapshot() []doc[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]doc[T], 0, len(c.docs))
	for _, d := range c.docs {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// update applies fn to the document with the given id; false when absent.
func (c *collection[T]) update(id string, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.docs[id]
	if !ok {
		return false
	}
	fn(&d.val)

	return true
}

// remove deletes the document; removing a missing id is a no-op.
func (c *collection[T]) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.docs, id)
}
