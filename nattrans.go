// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// NatTrans is a natural transformation from F to G at X: a map between
// handles that does not inspect the values it moves.
//
// Naturality:
//
//	Lift(Map_F(fa, f)) ≡ Map_G(Lift(fa), f)
type NatTrans[F, G TypeCon, X any] interface {
	Lift(fa App[F, X]) App[G, X]
}

// LiftApp applies the transformation N to fa. The target witness G is
// named with N because it does not occur in the argument.
func LiftApp[N NatTrans[F, G, X], G, F TypeCon, X any](fa App[F, X]) App[G, X] {
	var n N
	return n.Lift(fa)
}

// VerticalNat composes N1 from F to G with N2 from G to H.
type VerticalNat[N1 NatTrans[F, G, X], N2 NatTrans[G, H, X], F, G, H TypeCon, X any] struct{}

func (VerticalNat[N1, N2, F, G, H, X]) Lift(fa App[F, X]) App[H, X] {
	var n1 N1
	var n2 N2
	return n2.Lift(n1.Lift(fa))
}

// IdentityNat leaves every handle unchanged.
type IdentityNat[F TypeCon, X any] struct{}

func (IdentityNat[F, X]) Lift(fa App[F, X]) App[F, X] { return fa }

// OptionToSlice maps None to the empty slice and Some(x) to [x].
type OptionToSlice[X any] struct{}

func (OptionToSlice[X]) Lift(fa App[OptionF, X]) App[SliceF, X] {
	if x, ok := UnwrapOption(fa).Get(); ok {
		return WrapSlice(x)
	}
	return WrapSlice[X]()
}

// SliceHead keeps the first element of a slice, if any.
type SliceHead[X any] struct{}

func (SliceHead[X]) Lift(fa App[SliceF, X]) App[OptionF, X] {
	xs := UnwrapSlice(fa)
	if len(xs) == 0 {
		return WrapOption(None[X]())
	}
	return WrapOption(Some(xs[0]))
}

// EitherToOption drops the Left value.
type EitherToOption[E, X any] struct{}

func (EitherToOption[E, X]) Lift(fa App[EitherF[E], X]) App[OptionF, X] {
	if x, ok := UnwrapEither(fa).GetRight(); ok {
		return WrapOption(Some(x))
	}
	return WrapOption(None[X]())
}

// IdentityToOption wraps the held value in Some.
type IdentityToOption[X any] struct{}

func (IdentityToOption[X]) Lift(fa App[IdentityF, X]) App[OptionF, X] {
	return WrapOption(Some(UnwrapIdentity(fa)))
}

// ContToIdentity runs a continuation whose result type is its value type.
type ContToIdentity[X any] struct{}

func (ContToIdentity[X]) Lift(fa App[ContF[X], X]) App[IdentityF, X] {
	return WrapIdentity(Run(UnwrapCont(fa)))
}
