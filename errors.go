package aocgrid

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrParse is wrapped by every parsing failure: a malformed token,
	// an unexpected shape or a failed numeric conversion.
	ErrParse = errors.New("parse error")

	// ErrOutOfRange is wrapped by arithmetic overflow and invalid
	// indices. Overflow is a programming error and panics.
	ErrOutOfRange = errors.New("out of range")
)

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// AnyKey returns any key from the map.
// It panics if the map is empty.
func AnyKey[K comparable, V any](m map[K]V) K {
	for k := range m {
		return k
	}
	panic("AnyKey: empty map")
}
