package ksorted

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	ErrKeyNotFound = errors.New("ksorted: key not found")
)

func keyNotFound[K any](key K) error {
	return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// OrderedMap keeps its entries sorted by key at all times. Every
// operation walks the list, so lookups and updates are O(n).
//
// An OrderedMap is not safe for concurrent use; see SafeMap.
type OrderedMap[K, V any] struct {
	ll  list[K, V]
	cmp func(K, K) int
}

// New returns an empty map ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty map ordered by compare, which must return a
// negative number, zero or a positive number when a < b, a == b or a > b.
func NewFunc[K, V any](compare func(a, b K) int) *OrderedMap[K, V] {
	if compare == nil {
		panic("ksorted: nil compare function")
	}
	return &OrderedMap[K, V]{
		ll:  newList[K, V](0),
		cmp: compare,
	}
}

func (m *OrderedMap[K, V]) Len() int {
	return m.ll.len
}

func (m *OrderedMap[K, V]) IsEmpty() bool {
	return m.ll.IsEmpty()
}

// find returns the node holding key, or nilIndex.
func (m *OrderedMap[K, V]) find(key K) int {
	for i := m.ll.Front(); i != nilIndex; i = m.ll.Next(i) {
		c := m.cmp(m.ll.nodes[i].key, key)
		if c == 0 {
			return i
		}
		if c > 0 {
			break
		}
	}
	return nilIndex
}

// Insert adds key with value and reports true. If key is already
// present the map is left unchanged and Insert reports false.
func (m *OrderedMap[K, V]) Insert(key K, value V) bool {
	at := m.ll.Front()
	for at != nilIndex {
		c := m.cmp(m.ll.nodes[at].key, key)
		if c == 0 {
			return false
		}
		if c > 0 {
			break
		}
		at = m.ll.Next(at)
	}
	m.ll.InsertBefore(at, key, value)
	return true
}

func (m *OrderedMap[K, V]) Contains(key K) bool {
	return m.find(key) != nilIndex
}

// Remove deletes key. Removing an absent key does nothing.
func (m *OrderedMap[K, V]) Remove(key K) {
	if i := m.find(key); i != nilIndex {
		m.ll.Remove(i)
	}
}

// Clear removes all entries.
func (m *OrderedMap[K, V]) Clear() {
	m.ll.Reset()
}

// Get returns the value stored under key.
func (m *OrderedMap[K, V]) Get(key K) (V, error) {
	i := m.find(key)
	if i == nilIndex {
		var zero V
		return zero, keyNotFound(key)
	}
	return m.ll.nodes[i].value, nil
}

// Ptr returns a pointer to the value stored under key so it can be
// changed in place. The pointer is only valid until the next Insert,
// Remove, Clear or Assign on m.
func (m *OrderedMap[K, V]) Ptr(key K) (*V, error) {
	i := m.find(key)
	if i == nilIndex {
		return nil, keyNotFound(key)
	}
	return &m.ll.nodes[i].value, nil
}

// Set replaces the value of an existing key. It never inserts.
func (m *OrderedMap[K, V]) Set(key K, value V) error {
	p, err := m.Ptr(key)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// IndexOf returns the rank of key: the number of keys less than it.
func (m *OrderedMap[K, V]) IndexOf(key K) (int, error) {
	idx := 0
	for i := m.ll.Front(); i != nilIndex; i = m.ll.Next(i) {
		c := m.cmp(m.ll.nodes[i].key, key)
		if c == 0 {
			return idx, nil
		}
		if c > 0 {
			break
		}
		idx++
	}
	return 0, keyNotFound(key)
}

// Predecessor returns the largest key less than key. key itself need
// not be present.
func (m *OrderedMap[K, V]) Predecessor(key K) (K, error) {
	for i := m.ll.Back(); i != nilIndex; i = m.ll.Prev(i) {
		if m.cmp(m.ll.nodes[i].key, key) < 0 {
			return m.ll.nodes[i].key, nil
		}
	}
	var zero K
	return zero, keyNotFound(key)
}

// Successor returns the smallest key greater than key. key itself need
// not be present.
func (m *OrderedMap[K, V]) Successor(key K) (K, error) {
	for i := m.ll.Front(); i != nilIndex; i = m.ll.Next(i) {
		if m.cmp(m.ll.nodes[i].key, key) > 0 {
			return m.ll.nodes[i].key, nil
		}
	}
	var zero K
	return zero, keyNotFound(key)
}

// Clone returns a deep copy of m that shares no storage with it.
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	m2 := &OrderedMap[K, V]{
		ll:  newList[K, V](m.Len()),
		cmp: m.cmp,
	}
	m2.copyFrom(m)
	return m2
}

// Assign replaces the contents of m with a deep copy of src.
// m.Assign(m) does nothing.
func (m *OrderedMap[K, V]) Assign(src *OrderedMap[K, V]) {
	if m == src {
		return
	}
	m.ll.Reset()
	m.cmp = src.cmp
	m.copyFrom(src)
}

// copyFrom appends every entry of src to the empty list of m. src is
// already sorted, so no searching is needed.
func (m *OrderedMap[K, V]) copyFrom(src *OrderedMap[K, V]) {
	for i := src.ll.Front(); i != nilIndex; i = src.ll.Next(i) {
		n := &src.ll.nodes[i]
		m.ll.PushBack(n.key, n.value)
	}
}

// EqualFunc reports whether m and other hold the same number of
// entries and, in key order, each pair of entries has equal keys and
// values equal under eq.
func (m *OrderedMap[K, V]) EqualFunc(other *OrderedMap[K, V], eq func(V, V) bool) bool {
	if m == nil || other == nil {
		return (m == nil || m.IsEmpty()) && (other == nil || other.IsEmpty())
	}
	if m.Len() != other.Len() {
		return false
	}
	i, j := m.ll.Front(), other.ll.Front()
	for i != nilIndex {
		a, b := &m.ll.nodes[i], &other.ll.nodes[j]
		if m.cmp(a.key, b.key) != 0 || !eq(a.value, b.value) {
			return false
		}
		i, j = m.ll.Next(i), other.ll.Next(j)
	}
	return true
}

// Equal reports whether a and b hold the same entries in the same order.
func Equal[K any, V comparable](a, b *OrderedMap[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// UpdateAll replaces every value with fn(key, value), in ascending key
// order. Keys are left untouched.
func (m *OrderedMap[K, V]) UpdateAll(fn func(key K, value V) V) {
	for i := m.ll.Front(); i != nilIndex; i = m.ll.Next(i) {
		n := &m.ll.nodes[i]
		n.value = fn(n.key, n.value)
	}
}

// IncrementAll adds one to every value in m.
func IncrementAll[K any, V constraints.Integer | constraints.Float](m *OrderedMap[K, V]) {
	m.UpdateAll(func(_ K, v V) V {
		v++
		return v
	})
}

func (m *OrderedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("ksorted.OrderedMap[")
	for i := m.ll.Front(); i != nilIndex; i = m.ll.Next(i) {
		if i != m.ll.Front() {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", m.ll.nodes[i].key, m.ll.nodes[i].value)
	}
	sb.WriteByte(']')
	return sb.String()
}
