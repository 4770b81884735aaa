// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Function witnesses.
//
// Three binary witnesses describe functions from A to B by how often they
// may be called:
//
//	FunctionF       Func[A, B]         any number of times, no state
//	FunctionMutF    FuncMut[A, B]      any number of times, may update state
//	FunctionOnceF   *FuncOnce[A, B]    at most once
//
// The capabilities nest: every IsFn is an IsFnMut and every IsFnMut is an
// IsFnOnce. A consumer states the weakest capability it needs and accepts
// every stronger witness.

type onceTag struct{}

func (onceTag) fnOnce() {}

type mutTag struct{ onceTag }

func (mutTag) fnMut() {}

type fnTag struct{ mutTag }

func (fnTag) fn() {}

// IsFnOnce is satisfied by function witnesses callable at least once.
type IsFnOnce interface {
	BiTypeCon
	fnOnce()
}

// IsFnMut is satisfied by function witnesses callable repeatedly.
type IsFnMut interface {
	IsFnOnce
	fnMut()
}

// IsFn is satisfied by function witnesses callable repeatedly without
// observable state.
type IsFn interface {
	IsFnMut
	fn()
}

// FunctionOnceF is the witness of one-shot functions.
type FunctionOnceF struct {
	BiGeneric
	onceTag
}

// FunctionMutF is the witness of stateful functions.
type FunctionMutF struct {
	BiGeneric
	mutTag
}

// FunctionF is the witness of pure functions.
type FunctionF struct {
	BiGeneric
	fnTag
}

// Func is the application of [FunctionF] to (A, B).
type Func[A, B any] func(A) B

// BiAppOf registers Func[A, B] as the application of [FunctionF].
func (Func[A, B]) BiAppOf(FunctionF, A, B) {}

func (f Func[A, B]) call(a A) B { return f(a) }

// FuncMut is the application of [FunctionMutF] to (A, B).
// The function may close over state it updates on each call.
type FuncMut[A, B any] func(A) B

// BiAppOf registers FuncMut[A, B] as the application of [FunctionMutF].
func (FuncMut[A, B]) BiAppOf(FunctionMutF, A, B) {}

func (f FuncMut[A, B]) call(a A) B { return f(a) }

// caller is implemented by every applied function type.
type caller[A, B any] interface {
	call(A) B
}

// WrapFunction wraps f as a [FunctionF] handle.
func WrapFunction[A, B any](f func(A) B) BiApp[FunctionF, A, B] {
	return WrapBi[FunctionF, A, B](Func[A, B](f))
}

// WrapFunctionMut wraps f as a [FunctionMutF] handle.
func WrapFunctionMut[A, B any](f func(A) B) BiApp[FunctionMutF, A, B] {
	return WrapBi[FunctionMutF, A, B](FuncMut[A, B](f))
}

// WrapFunctionOnce wraps f as a [FunctionOnceF] handle.
func WrapFunctionOnce[A, B any](f func(A) B) BiApp[FunctionOnceF, A, B] {
	return WrapBi[FunctionOnceF, A, B](NewFuncOnce(f))
}

// ApplyOnce calls the function held by f with a.
// Accepts every function witness. For [FunctionOnceF] a second call
// through the same handle panics.
func ApplyOnce[F IsFnOnce, A, B any](f BiApp[F, A, B], a A) B {
	return callerOf(f).call(a)
}

// ApplyMut calls the function held by f with a.
// Rejects [FunctionOnceF] at compile time.
func ApplyMut[F IsFnMut, A, B any](f BiApp[F, A, B], a A) B {
	return callerOf(f).call(a)
}

// Apply calls the function held by f with a.
// Accepts only [FunctionF] and witnesses embedding it.
func Apply[F IsFn, A, B any](f BiApp[F, A, B], a A) B {
	return callerOf(f).call(a)
}

// GetFnOnce returns the function held by f.
func GetFnOnce[F IsFnOnce, A, B any](f BiApp[F, A, B]) func(A) B {
	return callerOf(f).call
}

// GetFnMut returns the function held by f.
func GetFnMut[F IsFnMut, A, B any](f BiApp[F, A, B]) func(A) B {
	return callerOf(f).call
}

// GetFn returns the function held by f.
func GetFn[F IsFn, A, B any](f BiApp[F, A, B]) func(A) B {
	return callerOf(f).call
}

// CloneFunction returns an independent handle to the same pure function.
func CloneFunction[A, B any](f BiApp[FunctionF, A, B]) BiApp[FunctionF, A, B] {
	return CloneBi(f)
}

// AsFnMut views a pure function as a stateful one.
func AsFnMut[F IsFn, A, B any](f BiApp[F, A, B]) BiApp[FunctionMutF, A, B] {
	return WrapFunctionMut(GetFn(f))
}

// AsFnOnce views any function as a one-shot function.
// The result may be called once regardless of f.
func AsFnOnce[F IsFnOnce, A, B any](f BiApp[F, A, B]) BiApp[FunctionOnceF, A, B] {
	return WrapFunctionOnce(GetFnOnce(f))
}

// ComposeFn returns the function g after f.
func ComposeFn[A, B, C any](f BiApp[FunctionF, A, B], g BiApp[FunctionF, B, C]) BiApp[FunctionF, A, C] {
	ff, gg := GetFn(f), GetFn(g)
	return WrapFunction(func(a A) C { return gg(ff(a)) })
}

func callerOf[F BiTypeCon, A, B any](f BiApp[F, A, B]) caller[A, B] {
	c, ok := f.open().(caller[A, B])
	if !ok {
		mismatch()
	}
	return c
}
