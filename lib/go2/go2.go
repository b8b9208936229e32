// Package go2 contains general utility helpers that should've been in Go. Maybe they'll be in Go 2.0.
package go2

func Pointer[T any](v T) *T {
	return &v
}

func Contains[T comparable](els []T, el T) bool {
	for _, el2 := range els {
		if el2 == el {
			return true
		}
	}
	return false
}

// Grow returns els extended with zero values to at least n elements.
func Grow[T any](els []T, n int) []T {
	for len(els) < n {
		var zero T
		els = append(els, zero)
	}
	return els
}
