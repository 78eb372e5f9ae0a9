package order

import "errors"

// ErrIndexOutOfRange reports a middle insertion outside (0, size).
var ErrIndexOutOfRange = errors.New("middle insertion index out of range")

// Container is a read view over an ordered list of keys.
type Container interface {
	Size() int
	KeyAt(index int) Key
}

// Keys is a Container backed by a slice already sorted ascending.
type Keys []Key

func (ks Keys) Size() int           { return len(ks) }
func (ks Keys) KeyAt(index int) Key { return ks[index] }

// InsertAtTail returns a key after every key of c.
func InsertAtTail(c Container) (Key, error) {
	if c.Size() == 0 {
		return Zero, nil
	}
	return c.KeyAt(c.Size() - 1).Next()
}

// InsertAtHead returns a key before every key of c.
func InsertAtHead(c Container) (Key, error) {
	if c.Size() == 0 {
		return Zero, nil
	}
	return c.KeyAt(0).Before()
}

// InsertAtMiddle returns a key between the items at index-1 and index.
func InsertAtMiddle(c Container, index int) (Key, error) {
	if index <= 0 || index >= c.Size() {
		return 0, ErrIndexOutOfRange
	}
	return Between(c.KeyAt(index-1), c.KeyAt(index))
}
