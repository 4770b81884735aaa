// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

import (
	"sync/atomic"
)

// FuncOnce is the applied type of [FunctionOnceF]: a function whose
// single call is claimed with an atomic counter, so a second call from any
// goroutine is detected. [WrapFunctionOnce] builds the handle around one.
type FuncOnce[A, B any] struct {
	used atomic.Uintptr
	f    func(A) B
}

// NewFuncOnce returns f guarded for a single call.
func NewFuncOnce[A, B any](f func(A) B) *FuncOnce[A, B] {
	return &FuncOnce[A, B]{f: f}
}

// claim reports whether this is the first use of o.
func (o *FuncOnce[A, B]) claim() bool { return o.used.Add(1) == 1 }

// Call runs the function. Any use after the first panics.
func (o *FuncOnce[A, B]) Call(a A) B {
	if !o.claim() {
		panic("hkt: one-shot function called twice")
	}
	return o.f(a)
}

// TryCall runs the function if it is unused and reports whether it ran.
func (o *FuncOnce[A, B]) TryCall(a A) (B, bool) {
	if !o.claim() {
		var zero B
		return zero, false
	}
	return o.f(a), true
}

// Discard uses up o without running the function.
func (o *FuncOnce[A, B]) Discard() { o.used.Store(1) }

// Used reports whether o has been called or discarded.
func (o *FuncOnce[A, B]) Used() bool { return o.used.Load() != 0 }

func (*FuncOnce[A, B]) BiAppOf(FunctionOnceF, A, B) {}

func (o *FuncOnce[A, B]) call(a A) B { return o.Call(a) }

// onceCont guards a TypeAppCont so that it runs at most once.
type onceCont[F TypeCon, X, R any] struct {
	used atomic.Uintptr
	k    TypeAppCont[F, X, R]
}

func (o *onceCont[F, X, R]) OnTypeApp(fx TypeApp[F, X]) R {
	if o.used.Add(1) != 1 {
		panic("hkt: continuation resumed twice")
	}
	return o.k.OnTypeApp(fx)
}

// Once returns a continuation that forwards to k at most once.
// A second invocation panics.
func Once[F TypeCon, X, R any](k TypeAppCont[F, X, R]) TypeAppCont[F, X, R] {
	return &onceCont[F, X, R]{k: k}
}
