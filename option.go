// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Option is a value that is either present (Some) or absent (None).
// Option[X] is comparable whenever X is.
type Option[X any] struct {
	value X
	ok    bool
}

// Some creates a present Option.
func Some[X any](x X) Option[X] {
	return Option[X]{value: x, ok: true}
}

// None creates an absent Option.
func None[X any]() Option[X] {
	return Option[X]{}
}

// IsSome returns true if the value is present.
func (o Option[X]) IsSome() bool { return o.ok }

// IsNone returns true if the value is absent.
func (o Option[X]) IsNone() bool { return !o.ok }

// Get returns the value and true, or zero and false.
func (o Option[X]) Get() (X, bool) {
	return o.value, o.ok
}

// OrElse returns the value if present, otherwise def.
func (o Option[X]) OrElse(def X) X {
	if o.ok {
		return o.value
	}
	return def
}

// AppOf registers Option[X] as the application of [OptionF] to X.
func (Option[X]) AppOf(OptionF, X) {}

// MatchOption calls onNone or onSome depending on o.
func MatchOption[X, T any](o Option[X], onNone func() T, onSome func(X) T) T {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies f to the value if present.
func MapOption[X, Y any](o Option[X], f func(X) Y) Option[Y] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[Y]()
}

// FlatMapOption sequences two Option computations.
func FlatMapOption[X, Y any](o Option[X], f func(X) Option[Y]) Option[Y] {
	if o.ok {
		return f(o.value)
	}
	return None[Y]()
}
