// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// HasBiTypeApp is the erased box behind a [BiApp] handle.
type HasBiTypeApp[F BiTypeCon, X, Y any] interface {
	payload() BiTypeApp[F, X, Y]
	ref() any
	clone() HasBiTypeApp[F, X, Y]
}

type biApplied[F BiTypeCon, X, Y any, FXY BiTypeApp[F, X, Y]] struct {
	fxy FXY
}

func (b *biApplied[F, X, Y, FXY]) payload() BiTypeApp[F, X, Y] { return b.fxy }

func (b *biApplied[F, X, Y, FXY]) ref() any { return &b.fxy }

func (b *biApplied[F, X, Y, FXY]) clone() HasBiTypeApp[F, X, Y] {
	return &biApplied[F, X, Y, FXY]{fxy: cloneApplied(b.fxy)}
}

// BiApp is a handle around the application of a binary witness F to
// (X, Y). It follows the rules of [App].
type BiApp[F BiTypeCon, X, Y any] struct {
	box HasBiTypeApp[F, X, Y]
}

// IsEmpty reports whether fa is the zero handle.
func (fa BiApp[F, X, Y]) IsEmpty() bool { return fa.box == nil }

func (fa BiApp[F, X, Y]) open() BiTypeApp[F, X, Y] {
	if fa.box == nil {
		emptyApp()
	}
	return fa.box.payload()
}

// WrapBi moves fxy into a fresh box and returns its handle.
func WrapBi[F BiTypeCon, X, Y any, FXY BiTypeApp[F, X, Y]](fxy FXY) BiApp[F, X, Y] {
	return BiApp[F, X, Y]{box: &biApplied[F, X, Y, FXY]{fxy: fxy}}
}

// UnwrapBi returns the applied value held by fa.
func UnwrapBi[FXY BiTypeApp[F, X, Y], F BiTypeCon, X, Y any](fa BiApp[F, X, Y]) FXY {
	return *biRefOf[FXY](fa)
}

// BorrowBi returns a read view of the applied value.
func BorrowBi[FXY BiTypeApp[F, X, Y], F BiTypeCon, X, Y any](fa BiApp[F, X, Y]) FXY {
	return *biRefOf[FXY](fa)
}

// BorrowMutBi returns a pointer into the box of fa.
func BorrowMutBi[FXY BiTypeApp[F, X, Y], F BiTypeCon, X, Y any](fa BiApp[F, X, Y]) *FXY {
	return biRefOf[FXY](fa)
}

// CloneBi returns a handle with its own box holding a copy of the
// applied value, made with [Cloner] when the payload implements it.
func CloneBi[F BiTypeCon, X, Y any](fa BiApp[F, X, Y]) BiApp[F, X, Y] {
	if fa.box == nil {
		emptyApp()
	}
	return BiApp[F, X, Y]{box: fa.box.clone()}
}

func biRefOf[FXY BiTypeApp[F, X, Y], F BiTypeCon, X, Y any](fa BiApp[F, X, Y]) *FXY {
	if fa.box == nil {
		emptyApp()
	}
	p, ok := fa.box.ref().(*FXY)
	if !ok {
		mismatch()
	}
	return p
}

// WrapEitherBi wraps e in an [EitherBiF] handle.
func WrapEitherBi[E, A any](e Either[E, A]) BiApp[EitherBiF, E, A] {
	return WrapBi[EitherBiF, E, A](e)
}

// UnwrapEitherBi returns the Either held by an [EitherBiF] handle.
func UnwrapEitherBi[E, A any](fa BiApp[EitherBiF, E, A]) Either[E, A] {
	return UnwrapBi[Either[E, A]](fa)
}

// EitherFromBi fixes the error type of an [EitherBiF] handle, giving the
// unary view of the same Either through [EitherF][E].
func EitherFromBi[E, A any](fa BiApp[EitherBiF, E, A]) App[EitherF[E], A] {
	return WrapEither(UnwrapEitherBi(fa))
}
