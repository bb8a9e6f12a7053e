package dllist

// node узел списка. Ссылкой next узел владеет, prev — обратная ссылка.
type node[T comparable] struct {
	prev *node[T]
	next *node[T]

	value T
}

// cleanup отвязывает узел от соседей, чтобы удалённый узел нельзя было
// спутать с узлом всё ещё лежащим в списке.
func (n *node[T]) cleanup() {
	n.prev = nil
	n.next = nil
}
