package layout

import "math"

const maxUintptr = ^uintptr(0)

// MaxSize is the largest region or payload size: the platform's maximum
// signed byte count.
const MaxSize = uintptr(math.MaxInt)

func SafeAdd(a, b uintptr) (uintptr, bool) {
	if a > maxUintptr-b {
		return 0, false
	}
	return a + b, true
}

func SafeMul(a, b uintptr) (uintptr, bool) {
	if b != 0 && a > maxUintptr/b {
		return 0, false
	}
	return a * b, true
}

// IsPow2 reports whether x is a nonzero power of two.
func IsPow2(x uintptr) bool {
	return x != 0 && x&(x-1) == 0
}

// NextPow2 returns the smallest power of two >= x. Zero rounds to one.
func NextPow2(x uintptr) (uintptr, bool) {
	if x <= 1 {
		return 1, true
	}
	p := uintptr(1)
	for p < x {
		if p > maxUintptr/2 {
			return 0, false
		}
		p <<= 1
	}
	return p, true
}

// AlignUp rounds x up to a multiple of align, which must be a power of two.
func AlignUp(x, align uintptr) (uintptr, bool) {
	sum, ok := SafeAdd(x, align-1)
	if !ok {
		return 0, false
	}
	return sum &^ (align - 1), true
}
