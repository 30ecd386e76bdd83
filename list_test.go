package ksorted

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type entry[K, V any] struct {
	Key   K
	Value V
}

// entries walks m front to back.
func entries[K, V any](m *OrderedMap[K, V]) []entry[K, V] {
	var out []entry[K, V]
	for i := m.ll.Front(); i != nilIndex; i = m.ll.Next(i) {
		out = append(out, entry[K, V]{m.ll.nodes[i].key, m.ll.nodes[i].value})
	}
	return out
}

// checkList verifies the ordering and link invariants of m.
func checkList[K, V any](t *testing.T, m *OrderedMap[K, V]) {
	t.Helper()
	l := &m.ll
	if (l.head == nilIndex) != (l.tail == nilIndex) {
		t.Fatalf("head %d and tail %d disagree on emptiness", l.head, l.tail)
	}
	if l.head != nilIndex && l.nodes[l.head].prev != nilIndex {
		t.Fatalf("head has prev %d", l.nodes[l.head].prev)
	}
	if l.tail != nilIndex && l.nodes[l.tail].next != nilIndex {
		t.Fatalf("tail has next %d", l.nodes[l.tail].next)
	}
	count := 0
	last := nilIndex
	for i := l.head; i != nilIndex; i = l.nodes[i].next {
		if l.nodes[i].prev != last {
			t.Fatalf("node %d: prev is %d, want %d", i, l.nodes[i].prev, last)
		}
		if last != nilIndex && m.cmp(l.nodes[last].key, l.nodes[i].key) >= 0 {
			t.Fatalf("keys out of order: %v before %v", l.nodes[last].key, l.nodes[i].key)
		}
		last = i
		count++
		if count > len(l.nodes) {
			t.Fatalf("cycle detected")
		}
	}
	if last != l.tail {
		t.Fatalf("forward walk ended at %d, tail is %d", last, l.tail)
	}
	if count != l.len {
		t.Fatalf("walked %d nodes, len is %d", count, l.len)
	}
}

func TestListPushAndRemove(t *testing.T) {
	l := newList[int, string](0)
	if !l.IsEmpty() {
		t.Errorf("new list should be empty")
	}
	a := l.PushBack(1, "a")
	c := l.PushBack(3, "c")
	b := l.InsertBefore(c, 2, "b")
	z := l.InsertBefore(a, 0, "z")

	var got []string
	for i := l.Front(); i != nilIndex; i = l.Next(i) {
		got = append(got, l.nodes[i].value)
	}
	if diff := cmp.Diff([]string{"z", "a", "b", "c"}, got); diff != "" {
		t.Errorf("forward walk mismatch (-want +got):\n%s", diff)
	}
	if l.Front() != z || l.Back() != c {
		t.Errorf("Front/Back = %d/%d, want %d/%d", l.Front(), l.Back(), z, c)
	}

	l.Remove(b)
	l.Remove(z)
	got = got[:0]
	for i := l.Back(); i != nilIndex; i = l.Prev(i) {
		got = append(got, l.nodes[i].value)
	}
	if diff := cmp.Diff([]string{"c", "a"}, got); diff != "" {
		t.Errorf("backward walk mismatch (-want +got):\n%s", diff)
	}
	if l.len != 2 {
		t.Errorf("len = %d, want 2", l.len)
	}
}

func TestListReusesFreedSlots(t *testing.T) {
	l := newList[int, string](0)
	for i := 0; i < 4; i++ {
		l.PushBack(i, "x")
	}
	l.Remove(1)
	l.Remove(2)
	if l.nodes[2].value != "" || l.nodes[1].value != "" {
		t.Errorf("released slots should be zeroed")
	}
	l.PushBack(10, "y")
	l.PushBack(11, "z")
	l.PushBack(12, "w")
	if len(l.nodes) != 5 {
		t.Errorf("arena grew to %d slots, want 5", len(l.nodes))
	}
	if l.len != 5 {
		t.Errorf("len = %d, want 5", l.len)
	}
}

func TestListReset(t *testing.T) {
	l := newList[int, string](0)
	l.PushBack(1, "a")
	l.PushBack(2, "b")
	l.Reset()
	if !l.IsEmpty() || l.len != 0 || l.Back() != nilIndex || len(l.nodes) != 0 {
		t.Errorf("Reset left state behind: %+v", l)
	}
	l.PushBack(3, "c")
	if l.Front() != l.Back() {
		t.Errorf("single node should be both front and back")
	}
}

func TestInsertKeepsLinksConsistent(t *testing.T) {
	m := New[int, int]()
	for _, k := range []int{50, 10, 90, 30, 70, 20, 80, 60, 40, 0, 100} {
		m.Insert(k, k*2)
		checkList(t, m)
	}
	for _, k := range []int{0, 100, 50, 55, 20} {
		m.Remove(k)
		checkList(t, m)
	}
	for _, k := range []int{5, 105, 50} {
		m.Insert(k, k)
		checkList(t, m)
	}
	want := []entry[int, int]{
		{5, 5}, {10, 20}, {30, 60}, {40, 80}, {50, 50}, {60, 120},
		{70, 140}, {80, 160}, {90, 180}, {105, 105},
	}
	if diff := cmp.Diff(want, entries(m)); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}
