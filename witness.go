// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

import (
	"fmt"
	"slices"
)

// Standard witnesses and their applied types.
//
//	Witness          Applied at X        Generic
//	IdentityF        Identity[X]         yes
//	ConstF[A]        Const[A, X]         yes
//	SliceF           Slice[X]            yes
//	OptionF          Option[X]           yes
//	EitherF[E]       Either[E, X]        yes
//	ContF[R]         Cont[R, X]          yes
//	AppF[F]          App[F, X]           yes
//	Compose[F, G]    Nested[F, G, X]     yes
//	ShowF            Shown[X]            no (X must be a fmt.Stringer)

// IdentityF is the identity constructor: applied at X it is X itself,
// held in [Identity].
type IdentityF struct{ Generic }

// Identity holds a single value.
type Identity[X any] struct{ Value X }

// AppOf registers Identity[X] as the application of [IdentityF] to X.
func (Identity[X]) AppOf(IdentityF, X) {}

// ConstF ignores its argument: applied at any X it holds an A.
type ConstF[A any] struct{ Generic }

// Const holds a value of A regardless of X.
type Const[A, X any] struct{ Value A }

// AppOf registers Const[A, X] as the application of [ConstF][A] to X.
func (Const[A, X]) AppOf(ConstF[A], X) {}

// SliceF is the list constructor.
type SliceF struct{ Generic }

// Slice is the application of [SliceF].
type Slice[X any] []X

// AppOf registers Slice[X] as the application of [SliceF] to X.
func (Slice[X]) AppOf(SliceF, X) {}

// CloneApplied copies the elements into a new backing array.
func (xs Slice[X]) CloneApplied() Slice[X] { return slices.Clone(xs) }

// OptionF is the optional-value constructor; see [Option].
type OptionF struct{ Generic }

// EitherF is Either with its error type fixed; see [Either].
type EitherF[E any] struct{ Generic }

// EitherBiF is the binary Either constructor.
type EitherBiF struct{ BiGeneric }

// ContF is the continuation constructor with fixed result type R; see [Cont].
type ContF[R any] struct{ Generic }

// AppF lifts a witness to the witness of its own handles:
// App[F, X] is the application of AppF[F] to X, so handles nest.
type AppF[F TypeCon] struct{ Generic }

// Compose is the composition of F after G.
// Applied at X it is F applied to (G applied to X), held in [Nested].
type Compose[F, G TypeCon] struct{ Generic }

// Nested is the application of [Compose][F, G] to X.
type Nested[F, G TypeCon, X any] struct {
	Outer App[F, App[G, X]]
}

// AppOf registers Nested[F, G, X] as the application of [Compose][F, G] to X.
func (Nested[F, G, X]) AppOf(Compose[F, G], X) {}

// CloneApplied clones the outer handle.
func (n Nested[F, G, X]) CloneApplied() Nested[F, G, X] {
	return Nested[F, G, X]{Outer: n.Outer.CloneApplied()}
}

// ShowF is applicable only to types that implement fmt.Stringer.
// Its application is bounded, so it embeds [Con] and cannot be opened
// with [WithTypeApp].
type ShowF struct{ Con }

// Shown is the application of [ShowF] to X.
type Shown[X fmt.Stringer] struct{ Value X }

// AppOf registers Shown[X] as the application of [ShowF] to X.
func (Shown[X]) AppOf(ShowF, X) {}

// String implements fmt.Stringer.
func (s Shown[X]) String() string { return s.Value.String() }

// WrapIdentity wraps x in an [IdentityF] handle.
func WrapIdentity[X any](x X) App[IdentityF, X] {
	return Wrap[IdentityF, X](Identity[X]{Value: x})
}

// UnwrapIdentity returns the value held by an [IdentityF] handle.
func UnwrapIdentity[X any](fa App[IdentityF, X]) X {
	return Unwrap[Identity[X]](fa).Value
}

// WrapConst wraps a in a [ConstF] handle at X.
func WrapConst[X, A any](a A) App[ConstF[A], X] {
	return Wrap[ConstF[A], X](Const[A, X]{Value: a})
}

// UnwrapConst returns the value held by a [ConstF] handle.
func UnwrapConst[A, X any](fa App[ConstF[A], X]) A {
	return Unwrap[Const[A, X]](fa).Value
}

// WrapSlice wraps xs in a [SliceF] handle.
func WrapSlice[X any](xs ...X) App[SliceF, X] {
	return Wrap[SliceF, X](Slice[X](xs))
}

// UnwrapSlice returns the slice held by a [SliceF] handle.
func UnwrapSlice[X any](fa App[SliceF, X]) []X {
	return Unwrap[Slice[X]](fa)
}

// WrapOption wraps o in an [OptionF] handle.
func WrapOption[X any](o Option[X]) App[OptionF, X] {
	return Wrap[OptionF, X](o)
}

// UnwrapOption returns the Option held by an [OptionF] handle.
func UnwrapOption[X any](fa App[OptionF, X]) Option[X] {
	return Unwrap[Option[X]](fa)
}

// WrapEither wraps e in an [EitherF] handle.
func WrapEither[E, A any](e Either[E, A]) App[EitherF[E], A] {
	return Wrap[EitherF[E], A](e)
}

// UnwrapEither returns the Either held by an [EitherF] handle.
func UnwrapEither[E, A any](fa App[EitherF[E], A]) Either[E, A] {
	return Unwrap[Either[E, A]](fa)
}

// WrapCont wraps m in a [ContF] handle.
func WrapCont[R, A any](m Cont[R, A]) App[ContF[R], A] {
	return Wrap[ContF[R], A](m)
}

// UnwrapCont returns the continuation held by a [ContF] handle.
func UnwrapCont[R, A any](fa App[ContF[R], A]) Cont[R, A] {
	return Unwrap[Cont[R, A]](fa)
}

// WrapShown wraps x in a [ShowF] handle.
func WrapShown[X fmt.Stringer](x X) App[ShowF, X] {
	return Wrap[ShowF, X](Shown[X]{Value: x})
}

// WrapCompose re-types a handle of handles as a handle of [Compose][F, G].
func WrapCompose[F, G TypeCon, X any](fga App[F, App[G, X]]) App[Compose[F, G], X] {
	return Wrap[Compose[F, G], X](Nested[F, G, X]{Outer: fga})
}

// UnwrapCompose is the inverse of [WrapCompose].
func UnwrapCompose[F, G TypeCon, X any](fa App[Compose[F, G], X]) App[F, App[G, X]] {
	return Unwrap[Nested[F, G, X]](fa).Outer
}
