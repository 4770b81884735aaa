// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Cont is a computation in continuation-passing style.
// Cont[R, A] produces an A and hands it to the rest of the computation,
// a function from A to the final result R.
//
// Cont[R, A] is the application of [ContF][R] to A. [OpenCont] expresses
// generic recovery as a Cont, and [ContMonad] is its type-class instance.
type Cont[R, A any] func(k func(A) R) R

// AppOf registers Cont[R, A] as the application of [ContF][R] to A.
func (Cont[R, A]) AppOf(ContF[R], A) {}

// Return passes a to the continuation unchanged.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend creates a continuation from a CPS function.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Bind runs m and continues with the computation f builds from its result.
func Bind[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// Map applies f to the result of m. It is the Map of [ContMonad].
func Map[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

// Then runs m, drops its result and continues with n.
func Then[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(A) R {
			return n(k)
		})
	}
}

// identity is the final continuation of Run.
func identity[A any](a A) A { return a }

// Run ends m with the identity continuation. R and A coincide, so the
// result is the value m produces.
func Run[A any](m Cont[A, A]) A {
	return m(identity[A])
}

// RunWith ends m with k.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}

// Shift captures the continuation up to the nearest [Reset].
// f may invoke the captured continuation any number of times.
//
//	Reset[int](Bind(Shift(func(k func(int) int) int {
//	    return k(k(3))
//	}), func(x int) Cont[int, int] {
//	    return Return[int](x * 2)
//	}))
//	// 12
func Shift[R, A any](f func(k func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Reset delimits the continuations captured by [Shift] inside m.
func Reset[R, A any](m Cont[A, A]) Cont[R, A] {
	return Return[R, A](Run(m))
}
