// Package order implements bounded integer sort keys and the insertion
// helpers used by ordered containers of schedules.
package order

import (
	"errors"
	"math/big"
)

const (
	// MaxKey is the largest representable position.
	MaxKey int64 = 5_000_000_000_000_000_000
	// MinKey is the smallest representable position.
	MinKey int64 = -MaxKey
	// DefaultGap is the distance between neighbours on head/tail inserts and relocation.
	DefaultGap int64 = 10_000_000
)

var (
	ErrRangeExceeded    = errors.New("order key out of range")
	ErrMidpointConflict = errors.New("no order key left between neighbours")
)

// Key is a position inside a container. Lower keys sort first.
type Key int64

// Zero is the key given to the first item of an empty container.
const Zero Key = 0

// New validates a raw value against the key bounds.
func New(v int64) (Key, error) {
	if v < MinKey || v > MaxKey {
		return 0, ErrRangeExceeded
	}
	return Key(v), nil
}

// Int64 returns the raw value for persistence.
func (k Key) Int64() int64 { return int64(k) }

// Next returns the key one gap after k.
// k is within bounds so the sum can not overflow int64.
func (k Key) Next() (Key, error) {
	return New(int64(k) + DefaultGap)
}

// Before returns the key one gap before k.
func (k Key) Before() (Key, error) {
	return New(int64(k) - DefaultGap)
}

// Midpoint returns the mean of a and b truncated toward a. The sum of two
// bounded keys does not fit in int64, so the arithmetic runs on big.Int.
// When no integer lies strictly between a and b the result equals one of them.
func Midpoint(a, b Key) Key {
	lo := big.NewInt(int64(a))
	diff := new(big.Int).Sub(big.NewInt(int64(b)), lo)
	// Quo truncates toward zero, which is toward a once added back to a.
	half := diff.Quo(diff, big.NewInt(2))
	return Key(lo.Add(lo, half).Int64())
}

// Between returns a key strictly between a and b, or ErrMidpointConflict.
func Between(a, b Key) (Key, error) {
	m := Midpoint(a, b)
	if m == a || m == b {
		return m, ErrMidpointConflict
	}
	return m, nil
}
