// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Type classes over handles.
//
// A type-class instance is a zero-size dictionary type passed as a type
// argument. Go methods cannot introduce type parameters, so an instance is
// instantiated at the element types it maps between:
//
//	out := hkt.MapApp[hkt.SliceMonad[int, string]](xs, strconv.Itoa)
//
// The façades MapApp, PureApp, ApplyApp and BindApp take the instance
// first and infer the rest from their arguments.

// Functor maps a function over the contents of an F handle.
//
// Laws:
//
//	Map(fa, id) ≡ fa
//	Map(Map(fa, f), g) ≡ Map(fa, g∘f)
type Functor[F TypeCon, A, B any] interface {
	Map(fa App[F, A], f func(A) B) App[F, B]
}

// Applicative extends [Functor] with lifting of values and of functions
// held in handles.
type Applicative[F TypeCon, A, B any] interface {
	Functor[F, A, B]
	Pure(a A) App[F, A]
	Apply(ff App[F, func(A) B], fa App[F, A]) App[F, B]
}

// Monad extends [Applicative] with sequencing.
//
// Laws:
//
//	Bind(Pure(a), f) ≡ f(a)
//	Bind(m, Pure) ≡ m
//	Bind(Bind(m, f), g) ≡ Bind(m, func(x) Bind(f(x), g))
type Monad[F TypeCon, A, B any] interface {
	Applicative[F, A, B]
	Bind(fa App[F, A], f func(A) App[F, B]) App[F, B]
}

// MapApp maps f over fa with the instance FF.
func MapApp[FF Functor[F, A, B], F TypeCon, A, B any](fa App[F, A], f func(A) B) App[F, B] {
	var ff FF
	return ff.Map(fa, f)
}

// MapFn maps a function handle over fa. The handle may be of any witness
// callable repeatedly; one-shot functions are rejected at compile time.
func MapFn[FF Functor[F, A, B], Fn IsFnMut, F TypeCon, A, B any](fa App[F, A], f BiApp[Fn, A, B]) App[F, B] {
	return MapApp[FF](fa, GetFnMut(f))
}

// PureApp lifts a into an F handle with the instance FF.
func PureApp[FF Applicative[F, A, B], F TypeCon, A, B any](a A) App[F, A] {
	var ff FF
	return ff.Pure(a)
}

// ApplyApp applies the functions held by ff to the values held by fa.
func ApplyApp[FF Applicative[F, A, B], F TypeCon, A, B any](ff App[F, func(A) B], fa App[F, A]) App[F, B] {
	var d FF
	return d.Apply(ff, fa)
}

// BindApp sequences fa with f using the instance FF.
func BindApp[FF Monad[F, A, B], F TypeCon, A, B any](fa App[F, A], f func(A) App[F, B]) App[F, B] {
	var ff FF
	return ff.Bind(fa, f)
}

// IdentityMonad is the [Monad] instance of [IdentityF].
type IdentityMonad[A, B any] struct{}

func (IdentityMonad[A, B]) Map(fa App[IdentityF, A], f func(A) B) App[IdentityF, B] {
	return WrapIdentity(f(UnwrapIdentity(fa)))
}

func (IdentityMonad[A, B]) Pure(a A) App[IdentityF, A] {
	return WrapIdentity(a)
}

func (IdentityMonad[A, B]) Apply(ff App[IdentityF, func(A) B], fa App[IdentityF, A]) App[IdentityF, B] {
	return WrapIdentity(UnwrapIdentity(ff)(UnwrapIdentity(fa)))
}

func (IdentityMonad[A, B]) Bind(fa App[IdentityF, A], f func(A) App[IdentityF, B]) App[IdentityF, B] {
	return f(UnwrapIdentity(fa))
}

// SliceMonad is the [Monad] instance of [SliceF].
// Apply and Bind enumerate combinations in order.
type SliceMonad[A, B any] struct{}

func (SliceMonad[A, B]) Map(fa App[SliceF, A], f func(A) B) App[SliceF, B] {
	xs := Borrow[Slice[A]](fa)
	out := make(Slice[B], len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return Wrap[SliceF, B](out)
}

func (SliceMonad[A, B]) Pure(a A) App[SliceF, A] {
	return Wrap[SliceF, A](Slice[A]{a})
}

func (SliceMonad[A, B]) Apply(ff App[SliceF, func(A) B], fa App[SliceF, A]) App[SliceF, B] {
	fs := Borrow[Slice[func(A) B]](ff)
	xs := Borrow[Slice[A]](fa)
	out := make(Slice[B], 0, len(fs)*len(xs))
	for _, f := range fs {
		for _, x := range xs {
			out = append(out, f(x))
		}
	}
	return Wrap[SliceF, B](out)
}

func (SliceMonad[A, B]) Bind(fa App[SliceF, A], f func(A) App[SliceF, B]) App[SliceF, B] {
	var out Slice[B]
	for _, x := range Borrow[Slice[A]](fa) {
		out = append(out, Borrow[Slice[B]](f(x))...)
	}
	return Wrap[SliceF, B](out)
}

// OptionMonad is the [Monad] instance of [OptionF].
type OptionMonad[A, B any] struct{}

func (OptionMonad[A, B]) Map(fa App[OptionF, A], f func(A) B) App[OptionF, B] {
	return WrapOption(MapOption(UnwrapOption(fa), f))
}

func (OptionMonad[A, B]) Pure(a A) App[OptionF, A] {
	return WrapOption(Some(a))
}

func (OptionMonad[A, B]) Apply(ff App[OptionF, func(A) B], fa App[OptionF, A]) App[OptionF, B] {
	f, ok := UnwrapOption(ff).Get()
	if !ok {
		return WrapOption(None[B]())
	}
	return WrapOption(MapOption(UnwrapOption(fa), f))
}

func (OptionMonad[A, B]) Bind(fa App[OptionF, A], f func(A) App[OptionF, B]) App[OptionF, B] {
	a, ok := UnwrapOption(fa).Get()
	if !ok {
		return WrapOption(None[B]())
	}
	return f(a)
}

// EitherMonad is the [Monad] instance of [EitherF][E].
// Left values short-circuit; Apply reports the first Left it meets.
type EitherMonad[E, A, B any] struct{}

func (EitherMonad[E, A, B]) Map(fa App[EitherF[E], A], f func(A) B) App[EitherF[E], B] {
	return WrapEither(MapEither(UnwrapEither(fa), f))
}

func (EitherMonad[E, A, B]) Pure(a A) App[EitherF[E], A] {
	return WrapEither(Right[E](a))
}

func (EitherMonad[E, A, B]) Apply(ff App[EitherF[E], func(A) B], fa App[EitherF[E], A]) App[EitherF[E], B] {
	ef := UnwrapEither(ff)
	f, ok := ef.GetRight()
	if !ok {
		e, _ := ef.GetLeft()
		return WrapEither(Left[E, B](e))
	}
	return WrapEither(MapEither(UnwrapEither(fa), f))
}

func (EitherMonad[E, A, B]) Bind(fa App[EitherF[E], A], f func(A) App[EitherF[E], B]) App[EitherF[E], B] {
	ea := UnwrapEither(fa)
	a, ok := ea.GetRight()
	if !ok {
		e, _ := ea.GetLeft()
		return WrapEither(Left[E, B](e))
	}
	return f(a)
}

// ContMonad is the [Monad] instance of [ContF][R].
type ContMonad[R, A, B any] struct{}

func (ContMonad[R, A, B]) Map(fa App[ContF[R], A], f func(A) B) App[ContF[R], B] {
	return WrapCont(Map(UnwrapCont(fa), f))
}

func (ContMonad[R, A, B]) Pure(a A) App[ContF[R], A] {
	return WrapCont(Return[R](a))
}

func (ContMonad[R, A, B]) Apply(ff App[ContF[R], func(A) B], fa App[ContF[R], A]) App[ContF[R], B] {
	mf, ma := UnwrapCont(ff), UnwrapCont(fa)
	return WrapCont(Bind(mf, func(f func(A) B) Cont[R, B] {
		return Map(ma, f)
	}))
}

func (ContMonad[R, A, B]) Bind(fa App[ContF[R], A], f func(A) App[ContF[R], B]) App[ContF[R], B] {
	return WrapCont(Bind(UnwrapCont(fa), func(a A) Cont[R, B] {
		return UnwrapCont(f(a))
	}))
}

// ComposeFunctor is the [Functor] instance of [Compose][F, G], built from
// an instance FO of F at the G handles and an instance FI of G:
//
//	type optionsInSlice = hkt.ComposeFunctor[
//		hkt.SliceMonad[hkt.App[hkt.OptionF, int], hkt.App[hkt.OptionF, string]],
//		hkt.OptionMonad[int, string],
//		hkt.SliceF, hkt.OptionF, int, string]
//
// Mapping through the composition equals mapping the outer handle with the
// inner map.
type ComposeFunctor[FO Functor[F, App[G, A], App[G, B]], FI Functor[G, A, B], F, G TypeCon, A, B any] struct{}

func (ComposeFunctor[FO, FI, F, G, A, B]) Map(fa App[Compose[F, G], A], f func(A) B) App[Compose[F, G], B] {
	var fo FO
	var fi FI
	return WrapCompose(fo.Map(UnwrapCompose(fa), func(ga App[G, A]) App[G, B] {
		return fi.Map(ga, f)
	}))
}
