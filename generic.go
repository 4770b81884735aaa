// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Generic recovery.
//
// A handle App[F, X] hides its applied type. For witnesses that embed
// [Generic] the handle can still be opened without naming the applied
// type: [WithTypeApp] hands the payload, packaged with its proof, to a
// continuation. The continuation is the only place the payload is
// observable, so the proof cannot escape the scope that checked it.

// TypeAppCont is a continuation receiving the packaged application of F
// to X and producing R.
type TypeAppCont[F TypeCon, X, R any] interface {
	OnTypeApp(fx TypeApp[F, X]) R
}

// ContFunc adapts a function to [TypeAppCont].
type ContFunc[F TypeCon, X, R any] func(fx TypeApp[F, X]) R

// OnTypeApp implements [TypeAppCont].
func (k ContFunc[F, X, R]) OnTypeApp(fx TypeApp[F, X]) R { return k(fx) }

// WithTypeApp opens fa and invokes k exactly once with its payload.
// F must embed [Generic]; bounded witnesses are rejected at compile time
// and are opened with [WithTypeAppWitness] instead.
//
// The payload observed by k is the value [Unwrap] would return.
func WithTypeApp[F TypeAppGeneric, X, R any](fa App[F, X], k TypeAppCont[F, X, R]) R {
	return transport(Reflexive[F](), fa, k)
}

// WithTypeAppFunc is [WithTypeApp] with a plain function continuation.
func WithTypeAppFunc[F TypeAppGeneric, X, R any](fa App[F, X], k func(fx TypeApp[F, X]) R) R {
	return transport(Reflexive[F](), fa, ContFunc[F, X, R](k))
}

// WithTypeAppWitness opens a handle of W through a witness that F equals W.
// The applied type FX is named by the caller, which makes the recovery
// available for bounded witnesses too:
//
//	hkt.WithTypeAppWitness[hkt.Shown[time.Duration]](hkt.Reflexive[hkt.ShowF](), fa, k)
//
// Panics with "hkt: applied type mismatch" if the payload is not an FX.
func WithTypeAppWitness[FX TypeApp[F, X], F, W TypeCon, X, R any](w Refl[F, W], fw App[W, X], k TypeAppCont[F, X, R]) R {
	fa := CastBack(CongWitness[X](w), fw)
	return k.OnTypeApp(Unwrap[FX](fa))
}

// transport re-types fw along w and hands its payload to k.
func transport[F, W TypeCon, X, R any](w Refl[F, W], fw App[W, X], k TypeAppCont[F, X, R]) R {
	fa := Cast(Symmetric(CongWitness[X](w)), fw)
	return k.OnTypeApp(fa.open())
}

// OpenCont returns the recovery of fa as a continuation-monad value.
// Running it with k is WithTypeApp(fa, k).
func OpenCont[R any, F TypeAppGeneric, X any](fa App[F, X]) Cont[R, TypeApp[F, X]] {
	return func(k func(TypeApp[F, X]) R) R {
		return transport(Reflexive[F](), fa, ContFunc[F, X, R](k))
	}
}

// BiTypeAppCont is the binary analogue of [TypeAppCont].
type BiTypeAppCont[F BiTypeCon, X, Y, R any] interface {
	OnBiTypeApp(fxy BiTypeApp[F, X, Y]) R
}

// BiContFunc adapts a function to [BiTypeAppCont].
type BiContFunc[F BiTypeCon, X, Y, R any] func(fxy BiTypeApp[F, X, Y]) R

// OnBiTypeApp implements [BiTypeAppCont].
func (k BiContFunc[F, X, Y, R]) OnBiTypeApp(fxy BiTypeApp[F, X, Y]) R { return k(fxy) }

// WithBiTypeApp opens a binary handle and invokes k exactly once with its
// payload. F must embed [BiGeneric].
func WithBiTypeApp[F BiTypeAppGeneric, X, Y, R any](fa BiApp[F, X, Y], k BiTypeAppCont[F, X, Y, R]) R {
	return k.OnBiTypeApp(fa.open())
}
