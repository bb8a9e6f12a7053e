package dllist

// Get получение элемента по индексу, отсчёт с нуля.
func (l *List[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 {
		return zero, errorNegativeIndex("get element", index)
	}

	n, passed := l.seek(index)
	if n == nil {
		return zero, errorIndexPastEnd("get element", index, passed)
	}

	return n.value, nil
}

// GetFirst получение первого элемента. Для пустого списка возвращается
// ErrorIndexOutOfRange.
func (l *List[T]) GetFirst() (T, error) {
	return l.Get(0)
}

// GetLast получение последнего элемента. Для пустого списка возвращается
// ErrorIndexOutOfRange.
func (l *List[T]) GetLast() (T, error) {
	return l.Get(l.Len() - 1)
}

// Contains проверка наличия значения в списке.
func (l *List[T]) Contains(v T) bool {
	return l.findFirst(v) != nil
}

// IndexOf индекс первого вхождения значения или -1 если его нет.
func (l *List[T]) IndexOf(v T) int {
	var i int
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return i
		}
		i++
	}

	return -1
}

// LastIndexOf индекс последнего вхождения значения или -1 если его нет.
// Поиск идёт с конца по обратным ссылкам.
func (l *List[T]) LastIndexOf(v T) int {
	n, i := l.findLast(v)
	if n == nil {
		return -1
	}

	return i
}

// Values копия элементов списка в прямом порядке.
func (l *List[T]) Values() []T {
	var res []T
	for n := l.head; n != nil; n = n.next {
		res = append(res, n.value)
	}

	return res
}

// seek проход вперёд на index шагов. Если узла с таким индексом нет,
// возвращается nil и количество узлов в списке.
func (l *List[T]) seek(index int) (*node[T], int) {
	var i int
	n := l.head
	for n != nil && i < index {
		n = n.next
		i++
	}

	return n, i
}

func (l *List[T]) findFirst(v T) *node[T] {
	n := l.head
	for n != nil && n.value != v {
		n = n.next
	}

	return n
}

// findLast доходит до последнего узла и затем идёт назад по prev.
func (l *List[T]) findLast(v T) (*node[T], int) {
	if l.head == nil {
		return nil, -1
	}

	n := l.head
	var i int
	for n.next != nil {
		n = n.next
		i++
	}

	for n != nil && n.value != v {
		n = n.prev
		i--
	}

	return n, i
}
