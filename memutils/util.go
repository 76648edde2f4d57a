package memutils

import (
	cerrors "github.com/cockroachdb/errors"
)

// Number covers the integer kinds used for sizes, offsets, and raw addresses.
type Number interface {
	~int | ~uint | ~uintptr
}

func CheckPow2[T Number](number T, name string) error {
	if number == 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

func IsPow2[T Number](number T) bool {
	return number != 0 && number&(number-1) == 0
}

// AlignUp and AlignDown require alignment to be a power of two.

func AlignUp[T Number](value, alignment T) T {
	return (value + alignment - 1) &^ (alignment - 1)
}

func AlignDown[T Number](value, alignment T) T {
	return value &^ (alignment - 1)
}

func IsAligned[T Number](value, alignment T) bool {
	return value&(alignment-1) == 0
}
