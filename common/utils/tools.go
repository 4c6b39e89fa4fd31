package utils

import (
	"math/rand"
	"time"
)

func Contains[T int | string](data []T, value T) bool {
	for _, v := range data {
		if v == value {
			return true
		}
	}
	return false
}

func Rand(n int) int {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	return rand.Intn(n)
}

func Default[T int | string](v, d T) T {
	if !isZero(v) {
		return v
	}
	return d
}

func isZero[T comparable](v T) bool {
	var zero T
	return v == zero
}
