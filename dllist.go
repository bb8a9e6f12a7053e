package dllist

// New конструктор пустого двусвязного списка.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// List двусвязный список значений сравнимого типа.
//
// Список хранит только ссылку на первый узел: ни длина, ни последний узел не
// кэшируются и вычисляются проходом, поэтому Len, GetLast, AddLast и т.п.
// работают за O(n). Если размер нужен часто, его стоит запомнить на стороне
// пользователя.
//
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
// Изменение списка во время его обхода снаружи приводит к неопределённому
// поведению.
type List[T comparable] struct {
	head *node[T]
}

// Add добавление значения в конец списка. Всегда возвращает true.
func (l *List[T]) Add(v T) bool {
	n := &node[T]{
		value: v,
	}

	last := l.terminal()
	if last == nil {
		l.head = n
		return true
	}

	last.next = n
	n.prev = last

	return true
}

// AddLast то же самое, что и Add.
func (l *List[T]) AddLast(v T) {
	l.Add(v)
}

// AddFirst добавление значения в начало списка.
func (l *List[T]) AddFirst(v T) {
	n := &node[T]{
		next:  l.head,
		value: v,
	}

	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
}

// IsEmpty проверка на пустоту.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len количество элементов в списке. Вычисляется проходом по списку.
func (l *List[T]) Len() int {
	var count int
	for n := l.head; n != nil; n = n.next {
		count++
	}

	return count
}

// Clear удаление всех элементов.
func (l *List[T]) Clear() {
	for l.head != nil {
		l.RemoveFirst()
	}
}

// terminal возвращает последний узел или nil для пустого списка.
func (l *List[T]) terminal() *node[T] {
	if l.head == nil {
		return nil
	}

	n := l.head
	for n.next != nil {
		n = n.next
	}

	return n
}
