package dllist

// Remove удаление элемента с данным индексом с возвратом его значения.
//
// Для отрицательного индекса и индекса за последним элементом возвращается
// ErrorIndexOutOfRange. Исключение — пустой список и индекс 0: тогда
// возвращается нулевое значение без ошибки.
func (l *List[T]) Remove(index int) (T, error) {
	var zero T
	if index < 0 {
		return zero, errorNegativeIndex("remove element", index)
	}

	n, passed := l.seek(index)
	if n == nil {
		if l.head == nil && index == 0 {
			return zero, nil
		}

		return zero, errorIndexPastEnd("remove element", index, passed)
	}

	l.unlink(n)
	return n.value, nil
}

// RemoveFirst удаление первого элемента. На пустом списке ничего не делает.
func (l *List[T]) RemoveFirst() {
	if l.head == nil {
		return
	}

	f := l.head
	l.head = f.next
	if f.next != nil {
		f.next.prev = nil
	}

	f.next = nil
}

// RemoveLast удаление последнего элемента. На пустом списке ничего не делает.
func (l *List[T]) RemoveLast() {
	last := l.terminal()
	if last == nil {
		return
	}

	if last.prev != nil {
		last.prev.next = nil
	} else {
		// в списке был только один элемент
		l.head = nil
	}

	last.prev = nil
}

// RemoveFirstOccurrence удаление первого вхождения значения.
// Возвращает false, если значения в списке нет.
func (l *List[T]) RemoveFirstOccurrence(v T) bool {
	n := l.findFirst(v)
	if n == nil {
		return false
	}

	l.unlink(n)
	return true
}

// RemoveLastOccurrence удаление последнего вхождения значения.
// Возвращает false, если значения в списке нет.
func (l *List[T]) RemoveLastOccurrence(v T) bool {
	n, _ := l.findLast(v)
	if n == nil {
		return false
	}

	l.unlink(n)
	return true
}

// unlink удаление данного узла из списка.
func (l *List[T]) unlink(n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	}

	n.cleanup()
}
