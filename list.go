package ksorted

// nilIndex marks the absence of a neighbour, the first node's prev and
// the last node's next.
const nilIndex = -1

type node[K, V any] struct {
	prev, next int
	key        K
	value      V
}

// list is a doubly linked list whose nodes live in a single slice and
// refer to each other by index. Released slots are chained through
// next on the free list and reused by later pushes.
type list[K, V any] struct {
	nodes      []node[K, V]
	head, tail int
	free       int
	len        int
}

func newList[K, V any](capacity int) list[K, V] {
	return list[K, V]{
		nodes: make([]node[K, V], 0, capacity),
		head:  nilIndex,
		tail:  nilIndex,
		free:  nilIndex,
	}
}

func (l *list[K, V]) IsEmpty() bool {
	return l.head == nilIndex
}

func (l *list[K, V]) Front() int {
	return l.head
}

func (l *list[K, V]) Back() int {
	return l.tail
}

func (l *list[K, V]) Next(i int) int {
	return l.nodes[i].next
}

func (l *list[K, V]) Prev(i int) int {
	return l.nodes[i].prev
}

func (l *list[K, V]) alloc(key K, value V) int {
	n := node[K, V]{prev: nilIndex, next: nilIndex, key: key, value: value}
	if l.free != nilIndex {
		i := l.free
		l.free = l.nodes[i].next
		l.nodes[i] = n
		return i
	}
	l.nodes = append(l.nodes, n)
	return len(l.nodes) - 1
}

// InsertBefore links a new node in front of at. An at of nilIndex
// appends to the back.
func (l *list[K, V]) InsertBefore(at int, key K, value V) int {
	if at == nilIndex {
		return l.PushBack(key, value)
	}
	i := l.alloc(key, value)
	prev := l.nodes[at].prev
	l.nodes[i].prev = prev
	l.nodes[i].next = at
	l.nodes[at].prev = i
	if prev == nilIndex {
		l.head = i
	} else {
		l.nodes[prev].next = i
	}
	l.len++
	return i
}

func (l *list[K, V]) PushBack(key K, value V) int {
	i := l.alloc(key, value)
	l.len++
	if l.tail == nilIndex {
		l.head = i
		l.tail = i
		return i
	}

	l.nodes[i].prev = l.tail
	l.nodes[l.tail].next = i
	l.tail = i
	return i
}

// Remove unlinks node i and puts its slot on the free list.
func (l *list[K, V]) Remove(i int) {
	n := &l.nodes[i]
	if n.prev == nilIndex {
		l.head = n.next
	} else {
		l.nodes[n.prev].next = n.next
	}
	if n.next == nilIndex {
		l.tail = n.prev
	} else {
		l.nodes[n.next].prev = n.prev
	}
	*n = node[K, V]{prev: nilIndex, next: l.free}
	l.free = i
	l.len--
}

func (l *list[K, V]) Reset() {
	clear(l.nodes)
	*l = list[K, V]{
		nodes: l.nodes[:0],
		head:  nilIndex,
		tail:  nilIndex,
		free:  nilIndex,
	}
}
