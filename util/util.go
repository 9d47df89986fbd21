package util

import (
	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func IsPowerOfTwo[A constraints.Integer](num A) bool {
	return num > 0 && num&(num-1) == 0
}

func AbsDiff[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num1 - num2
	}
	return num2 - num1
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num1
	}
	return num2
}
