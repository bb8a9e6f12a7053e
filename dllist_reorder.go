package dllist

// Reverse разворот списка на месте.
func (l *List[T]) Reverse() {
	n := l.head
	for n != nil {
		// после обмена prev указывает на бывший следующий узел
		n.next, n.prev = n.prev, n.next
		l.head = n
		n = n.prev
	}
}

// MoveLastToFront перенос последнего элемента в начало списка.
// Для списков из нуля или одного элемента ничего не делает.
func (l *List[T]) MoveLastToFront() {
	if l.head == nil || l.head.next == nil {
		return
	}

	last := l.terminal()
	last.prev.next = nil
	last.prev = nil

	last.next = l.head
	l.head.prev = last
	l.head = last
}
