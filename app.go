// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// HasTypeApp is the erased box behind an [App] handle.
// Its static type mentions only the witness F and the argument X; the
// concrete applied type is recovered by [Unwrap], [Borrow], [BorrowMut] or
// opened generically by [WithTypeApp].
type HasTypeApp[F TypeCon, X any] interface {
	// payload returns the applied value packaged with its proof.
	payload() TypeApp[F, X]
	// ref returns *FX for the concrete applied type FX.
	ref() any
	clone() HasTypeApp[F, X]
}

// applied is the only implementation of [HasTypeApp].
type applied[F TypeCon, X any, FX TypeApp[F, X]] struct {
	fx FX
}

func (b *applied[F, X, FX]) payload() TypeApp[F, X] { return b.fx }

func (b *applied[F, X, FX]) ref() any { return &b.fx }

func (b *applied[F, X, FX]) clone() HasTypeApp[F, X] {
	return &applied[F, X, FX]{fx: cloneApplied(b.fx)}
}

// Cloner is implemented by applied types whose plain Go copy would share
// mutable state with its source, such as [Slice]. [CloneApp] and
// [CloneBi] call CloneApplied instead of copying such a payload.
type Cloner[FX any] interface {
	CloneApplied() FX
}

func cloneApplied[FX any](fx FX) FX {
	if c, ok := any(fx).(Cloner[FX]); ok {
		return c.CloneApplied()
	}
	return fx
}

// App is a handle around the application of F to X.
//
// Downstream signatures mention App[F, X] and never the applied type, so
// code can be written once for every witness F. A handle owns exactly one
// box. Copying an App value shares that box; use [CloneApp] for an
// independent handle.
//
// The zero App is empty. Every accessor panics on an empty handle.
type App[F TypeCon, X any] struct {
	box HasTypeApp[F, X]
}

// AppOf registers App[F, X] as the application of [AppF] to X.
func (App[F, X]) AppOf(AppF[F], X) {}

// IsEmpty reports whether fa is the zero handle.
func (fa App[F, X]) IsEmpty() bool { return fa.box == nil }

// CloneApplied makes a handle held as a payload, under [AppF], clone its
// box along with the outer one. The zero handle clones to itself.
func (fa App[F, X]) CloneApplied() App[F, X] {
	if fa.box == nil {
		return fa
	}
	return CloneApp(fa)
}

func (fa App[F, X]) open() TypeApp[F, X] {
	if fa.box == nil {
		emptyApp()
	}
	return fa.box.payload()
}

// Wrap moves fx into a fresh box and returns its handle.
// The call site names the witness and the argument; the applied type is
// inferred from fx and checked against the registration:
//
//	fa := hkt.Wrap[hkt.SliceF, int](hkt.Slice[int]{1, 2, 3})
//
// Wrap allocates exactly once.
func Wrap[F TypeCon, X any, FX TypeApp[F, X]](fx FX) App[F, X] {
	return App[F, X]{box: &applied[F, X, FX]{fx: fx}}
}

// Unwrap returns the applied value held by fa.
// The applied type is named explicitly and F, X are inferred from fa:
//
//	xs := hkt.Unwrap[hkt.Slice[int]](fa)
//
// Naming a type that does not register AppOf(F, X) is a compile error.
func Unwrap[FX TypeApp[F, X], F TypeCon, X any](fa App[F, X]) FX {
	return *refOf[FX](fa)
}

// Borrow returns a read view of the applied value: a copy of the payload
// header. Replacing the view leaves fa unchanged, but Go has no immutable
// view, so writes through a reference-typed view, such as an element of a
// [Slice], reach the box.
func Borrow[FX TypeApp[F, X], F TypeCon, X any](fa App[F, X]) FX {
	return *refOf[FX](fa)
}

// BorrowMut returns a pointer into the box of fa.
// Writes through the pointer are visible on the next access of fa and of
// handles copied from it, and of no other handle.
func BorrowMut[FX TypeApp[F, X], F TypeCon, X any](fa App[F, X]) *FX {
	return refOf[FX](fa)
}

// CloneApp returns a handle with its own box holding a copy of the
// applied value. Payloads implementing [Cloner] are copied with
// CloneApplied, so BorrowMut on the clone never reaches fa; any other
// payload is copied as a plain Go value.
func CloneApp[F TypeCon, X any](fa App[F, X]) App[F, X] {
	if fa.box == nil {
		emptyApp()
	}
	return App[F, X]{box: fa.box.clone()}
}

func refOf[FX TypeApp[F, X], F TypeCon, X any](fa App[F, X]) *FX {
	if fa.box == nil {
		emptyApp()
	}
	p, ok := fa.box.ref().(*FX)
	if !ok {
		mismatch()
	}
	return p
}

// Proof is a zero-size capability token. Instantiating Proof[F, X, FX]
// requires FX to be the registered application of F to X, so holding one
// proves the application without mentioning FX in later signatures.
type Proof[F TypeCon, X any, FX TypeApp[F, X]] struct{}

// Wrap is [Wrap] specialized to the proven application.
func (Proof[F, X, FX]) Wrap(fx FX) App[F, X] { return Wrap[F, X](fx) }

// Unwrap is [Unwrap] specialized to the proven application.
func (Proof[F, X, FX]) Unwrap(fa App[F, X]) FX { return Unwrap[FX](fa) }

// Borrow is [Borrow] specialized to the proven application.
func (Proof[F, X, FX]) Borrow(fa App[F, X]) FX { return Borrow[FX](fa) }

// BorrowMut is [BorrowMut] specialized to the proven application.
func (Proof[F, X, FX]) BorrowMut(fa App[F, X]) *FX { return BorrowMut[FX](fa) }

// emptyApp panics for access through a zero handle.
// Kept out of line so callers stay inlinable.
//
//go:noinline
func emptyApp() {
	panic("hkt: empty App handle")
}

// mismatch panics when the box holds a different applied type than the
// one requested, which means two types registered the same application.
//
//go:noinline
func mismatch() {
	panic("hkt: applied type mismatch")
}
