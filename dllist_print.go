package dllist

import (
	"fmt"
	"io"

	"github.com/sirkon/errors"
)

// Print отладочный вывод элементов в прямом порядке: перевод строки, затем
// каждое значение с последующим пробелом.
func (l *List[T]) Print(w io.Writer) error {
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.Wrap(err, "write leading line break")
	}

	var i int
	for n := l.head; n != nil; n = n.next {
		if _, err := fmt.Fprintf(w, "%v ", n.value); err != nil {
			return errors.Wrap(err, "write element").Int("index", i)
		}
		i++
	}

	return nil
}

// PrintAfter выполняет op и затем выводит состояние списка через Print.
func (l *List[T]) PrintAfter(w io.Writer, op func()) error {
	op()
	return l.Print(w)
}
