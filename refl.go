// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Refl is a witness that A and B are the same type.
//
// A Refl value can only be obtained from [Reflexive] and the operations
// that preserve equality: [Symmetric], [Transitive] and the congruences.
// [Equal] is the one run-time source and yields a witness only when the
// types are identical. Holding a Refl[A, B] therefore lets code move
// values between A and B with [Cast] and [CastBack] without assertions
// visible at the call site.
type Refl[A, B any] interface {
	cast(A) B
	castBack(B) A
}

// refl is the single representation of every witness.
// Every constructor only produces refl[T] as Refl[T, T] at run time.
type refl[T any] struct{}

func (refl[T]) cast(a T) T     { return a }
func (refl[T]) castBack(b T) T { return b }

// Reflexive returns the witness that T equals T.
func Reflexive[T any]() Refl[T, T] {
	return refl[T]{}
}

// Symmetric turns a witness of A = B into a witness of B = A.
// Symmetric(Symmetric(w)) behaves exactly like w.
func Symmetric[A, B any](w Refl[A, B]) Refl[B, A] {
	mustWitness(w)
	return derive[B, A]()
}

// Transitive composes A = B and B = C into A = C.
func Transitive[A, B, C any](ab Refl[A, B], bc Refl[B, C]) Refl[A, C] {
	mustWitness(ab)
	mustWitness(bc)
	return derive[A, C]()
}

// Cast moves a from A to B along w.
func Cast[A, B any](w Refl[A, B], a A) B {
	mustWitness(w)
	return w.cast(a)
}

// CastBack moves b from B to A along w.
func CastBack[A, B any](w Refl[A, B], b B) A {
	mustWitness(w)
	return w.castBack(b)
}

// CongSlice lifts A = B to []A = []B.
func CongSlice[A, B any](w Refl[A, B]) Refl[[]A, []B] {
	mustWitness(w)
	return derive[[]A, []B]()
}

// CongPtr lifts A = B to *A = *B.
func CongPtr[A, B any](w Refl[A, B]) Refl[*A, *B] {
	mustWitness(w)
	return derive[*A, *B]()
}

// CongOption lifts A = B to Option[A] = Option[B].
func CongOption[A, B any](w Refl[A, B]) Refl[Option[A], Option[B]] {
	mustWitness(w)
	return derive[Option[A], Option[B]]()
}

// CongFunc lifts A = B to func(A) R = func(B) R.
func CongFunc[R, A, B any](w Refl[A, B]) Refl[func(A) R, func(B) R] {
	mustWitness(w)
	return derive[func(A) R, func(B) R]()
}

// CongApp lifts A = B through the argument position of a handle:
// App[F, A] = App[F, B].
func CongApp[F TypeCon, A, B any](w Refl[A, B]) Refl[App[F, A], App[F, B]] {
	mustWitness(w)
	return derive[App[F, A], App[F, B]]()
}

// CongWitness lifts F = G through the witness position of a handle:
// App[F, X] = App[G, X]. X is given explicitly.
func CongWitness[X any, F, G TypeCon](w Refl[F, G]) Refl[App[F, X], App[G, X]] {
	mustWitness(w)
	return derive[App[F, X], App[G, X]]()
}

// CongTypeApp lifts F = G to the packaged proofs TypeApp[F, X] = TypeApp[G, X].
func CongTypeApp[X any, F, G TypeCon](w Refl[F, G]) Refl[TypeApp[F, X], TypeApp[G, X]] {
	mustWitness(w)
	return derive[TypeApp[F, X], TypeApp[G, X]]()
}

// CongApplied lifts A = B through the applied types of F.
// FA and FB must be the registered applications of F at A and B.
func CongApplied[F TypeCon, FA TypeApp[F, A], FB TypeApp[F, B], A, B any](w Refl[A, B]) Refl[FA, FB] {
	mustWitness(w)
	return derive[FA, FB]()
}

// ReflectApplied returns the handle of fa re-typed along w.
// It is [CongApp] followed by [Cast].
func ReflectApplied[F TypeCon, A, B any](w Refl[A, B], fa App[F, A]) App[F, B] {
	return Cast(CongApp[F](w), fa)
}

// Equal reports whether A and B are identical types, returning the
// witness when they are.
func Equal[A, B any]() (Refl[A, B], bool) {
	w, ok := any(refl[A]{}).(Refl[A, B])
	return w, ok
}

// derive rebuilds a witness for types already known to be equal.
func derive[A, B any]() Refl[A, B] {
	w, ok := any(refl[A]{}).(Refl[A, B])
	if !ok {
		distinctTypes()
	}
	return w
}

func mustWitness[A, B any](w Refl[A, B]) {
	if w == nil {
		nilWitness()
	}
}

//go:noinline
func nilWitness() {
	panic("hkt: nil equality witness")
}

//go:noinline
func distinctTypes() {
	panic("hkt: equality witness for distinct types")
}
