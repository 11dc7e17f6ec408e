package memutils

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

type Number interface {
	~int | ~uint | ~uint32 | ~uint64
}

// CheckPow2 returns an error wrapping PowerOfTwoError if number is not a power of two. Zero is
// accepted, callers that care treat it as 1.
func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return errors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to the next multiple of alignment, which must be a power of two
func AlignUp(value int, alignment uint) int {
	if alignment <= 1 {
		return value
	}
	return (value + int(alignment) - 1) & int(^(alignment - 1))
}

// AlignDown rounds value down to the previous multiple of alignment, which must be a power of two
func AlignDown(value int, alignment uint) int {
	if alignment <= 1 {
		return value
	}
	return value & int(^(alignment - 1))
}

// IsAligned reports whether value is a multiple of alignment
func IsAligned(value int, alignment uint) bool {
	return AlignDown(value, alignment) == value
}

// DivideRoundingUp performs an integer division of numerator by denominator, rounding the result
// towards positive infinity
func DivideRoundingUp[T constraints.Integer](numerator, denominator T) T {
	return (numerator + denominator - 1) / denominator
}

func Max[T constraints.Ordered](left, right T) T {
	if left > right {
		return left
	}
	return right
}

func Min[T constraints.Ordered](left, right T) T {
	if left < right {
		return left
	}
	return right
}
