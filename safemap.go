package ksorted

import (
	"cmp"
	"sync"
)

// SafeMap guards an OrderedMap with a read/write mutex so it can be
// shared between goroutines. Each call holds the lock for its whole
// duration.
type SafeMap[K, V any] struct {
	sync.RWMutex
	m *OrderedMap[K, V]
}

func NewSafe[K cmp.Ordered, V any]() *SafeMap[K, V] {
	return &SafeMap[K, V]{m: New[K, V]()}
}

func NewSafeFunc[K, V any](compare func(a, b K) int) *SafeMap[K, V] {
	return &SafeMap[K, V]{m: NewFunc[K, V](compare)}
}

// Wrap takes ownership of m. The caller must not use m afterwards.
func Wrap[K, V any](m *OrderedMap[K, V]) *SafeMap[K, V] {
	return &SafeMap[K, V]{m: m}
}

func (c *SafeMap[K, V]) Len() int {
	c.RLock()
	defer c.RUnlock()
	return c.m.Len()
}

func (c *SafeMap[K, V]) IsEmpty() bool {
	c.RLock()
	defer c.RUnlock()
	return c.m.IsEmpty()
}

func (c *SafeMap[K, V]) Insert(key K, value V) bool {
	c.Lock()
	defer c.Unlock()
	return c.m.Insert(key, value)
}

func (c *SafeMap[K, V]) Contains(key K) bool {
	c.RLock()
	defer c.RUnlock()
	return c.m.Contains(key)
}

func (c *SafeMap[K, V]) Remove(key K) {
	c.Lock()
	c.m.Remove(key)
	c.Unlock()
}

func (c *SafeMap[K, V]) Clear() {
	c.Lock()
	c.m.Clear()
	c.Unlock()
}

func (c *SafeMap[K, V]) Get(key K) (V, error) {
	c.RLock()
	defer c.RUnlock()
	return c.m.Get(key)
}

func (c *SafeMap[K, V]) Set(key K, value V) error {
	c.Lock()
	defer c.Unlock()
	return c.m.Set(key, value)
}

// Update replaces the value under key with fn applied to it, while
// holding the write lock.
func (c *SafeMap[K, V]) Update(key K, fn func(V) V) error {
	c.Lock()
	defer c.Unlock()
	p, err := c.m.Ptr(key)
	if err != nil {
		return err
	}
	*p = fn(*p)
	return nil
}

func (c *SafeMap[K, V]) IndexOf(key K) (int, error) {
	c.RLock()
	defer c.RUnlock()
	return c.m.IndexOf(key)
}

func (c *SafeMap[K, V]) Predecessor(key K) (K, error) {
	c.RLock()
	defer c.RUnlock()
	return c.m.Predecessor(key)
}

func (c *SafeMap[K, V]) Successor(key K) (K, error) {
	c.RLock()
	defer c.RUnlock()
	return c.m.Successor(key)
}

func (c *SafeMap[K, V]) UpdateAll(fn func(key K, value V) V) {
	c.Lock()
	defer c.Unlock()
	c.m.UpdateAll(fn)
}

// Clone returns an independent SafeMap holding a deep copy of c.
func (c *SafeMap[K, V]) Clone() *SafeMap[K, V] {
	return Wrap(c.Snapshot())
}

// Snapshot returns a deep copy of the guarded map. The copy is not
// guarded.
func (c *SafeMap[K, V]) Snapshot() *OrderedMap[K, V] {
	c.RLock()
	defer c.RUnlock()
	return c.m.Clone()
}

func (c *SafeMap[K, V]) String() string {
	c.RLock()
	defer c.RUnlock()
	return c.m.String()
}
