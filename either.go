// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Either is the applied type of two witnesses: of [EitherF][E] at A, where
// E is fixed and A varies under [EitherMonad], and of the binary witness
// [EitherBiF] at (E, A), where both vary. A handle of either kind holds an
// Either, and [EitherFromBi] moves between them.
//
// An Either holds an E on the left or an A on the right. The zero Either
// is Left with the zero E.
type Either[E, A any] struct {
	e     E
	a     A
	right bool
}

// Left returns an Either holding e.
func Left[E, A any](e E) Either[E, A] { return Either[E, A]{e: e} }

// Right returns an Either holding a.
func Right[E, A any](a A) Either[E, A] { return Either[E, A]{a: a, right: true} }

// IsRight reports whether x holds an A.
func (x Either[E, A]) IsRight() bool { return x.right }

// IsLeft reports whether x holds an E.
func (x Either[E, A]) IsLeft() bool { return !x.right }

// GetRight returns the A held by x, if any.
func (x Either[E, A]) GetRight() (A, bool) {
	if !x.right {
		var zero A
		return zero, false
	}
	return x.a, true
}

// GetLeft returns the E held by x, if any.
func (x Either[E, A]) GetLeft() (E, bool) {
	if x.right {
		var zero E
		return zero, false
	}
	return x.e, true
}

func (Either[E, A]) AppOf(EitherF[E], A) {}

func (Either[E, A]) BiAppOf(EitherBiF, E, A) {}

// MatchEither folds x into T.
func MatchEither[E, A, T any](x Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if x.right {
		return onRight(x.a)
	}
	return onLeft(x.e)
}

// MapEither maps the right side and passes a left side through. It is the
// Map of [EitherMonad] without the handle.
func MapEither[E, A, B any](x Either[E, A], f func(A) B) Either[E, B] {
	if !x.right {
		return Left[E, B](x.e)
	}
	return Right[E](f(x.a))
}

// MapLeftEither maps the left side, the first argument of [EitherBiF].
func MapLeftEither[E, F, A any](x Either[E, A], f func(E) F) Either[F, A] {
	if x.right {
		return Right[F](x.a)
	}
	return Left[F, A](f(x.e))
}

// FlatMapEither continues with f on the right side and stops on the left.
func FlatMapEither[E, A, B any](x Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if !x.right {
		return Left[E, B](x.e)
	}
	return f(x.a)
}
