package dllist

import "github.com/sirkon/errors"

// ErrorIndexOutOfRange возвращается Get и Remove когда индекс отрицательный
// или не соответствует ни одному элементу списка. Проверяется через errors.Is.
const ErrorIndexOutOfRange errors.Const = "index out of range"

func errorNegativeIndex(op string, index int) error {
	return errors.Wrap(ErrorIndexOutOfRange, op).Int("index", index)
}

func errorIndexPastEnd(op string, index, length int) error {
	return errors.Wrap(ErrorIndexOutOfRange, op).
		Int("index", index).
		Int("length", length)
}
