package dllist

import (
	"testing"

	"github.com/sirkon/deepequal"
)

func listOf[T comparable](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Add(v)
	}

	return l
}

// checkLinks проверяет согласованность прямых и обратных ссылок.
func checkLinks[T comparable](t *testing.T, l *List[T]) {
	t.Helper()

	if l.head == nil {
		return
	}
	if l.head.prev != nil {
		t.Error("head node must not have a predecessor")
	}

	var forward []T
	var last *node[T]
	for n := l.head; n != nil; n = n.next {
		if n.next != nil && n.next.prev != n {
			t.Errorf("broken back link after element %v", n.value)
			return
		}
		forward = append(forward, n.value)
		last = n
	}

	backward := make([]T, len(forward))
	i := len(backward)
	for n := last; n != nil; n = n.prev {
		i--
		if i < 0 {
			t.Error("backward walk is longer than the forward one")
			return
		}
		backward[i] = n.value
	}
	if i != 0 {
		t.Error("backward walk is shorter than the forward one")
		return
	}

	if !deepequal.Equal(forward, backward) {
		t.Error("forward and backward walks disagree")
		deepequal.SideBySide(t, "walks", forward, backward)
	}
}

func checkValues[T comparable](t *testing.T, l *List[T], expected ...T) {
	t.Helper()

	checkLinks(t, l)
	if len(expected) == 0 {
		if !l.IsEmpty() || l.Len() != 0 {
			t.Errorf("list expected to be empty, got %v", l.Values())
		}
		return
	}

	if !deepequal.Equal(expected, l.Values()) {
		t.Error("unexpected list contents")
		deepequal.SideBySide(t, "values", expected, l.Values())
	}
	if l.Len() != len(expected) {
		t.Errorf("list length %d expected, got %d", len(expected), l.Len())
	}
}
