// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

import (
	"cmp"
	"fmt"
)

// Constraint kinds.
//
// A constraint C over X is a binary witness whose application at (X, R)
// is a continuation that needs the capability of C on X to produce R.
// An evidence type H implements HasConstraint[C, X, R] only for the X that
// satisfy C, so [WithConstraint] type-checks exactly when the capability
// exists, and the capability is handed to the continuation at run time.

// HasConstraint is implemented by evidence that X satisfies C.
type HasConstraint[C BiTypeCon, X, R any] interface {
	WithConstraint(k BiApp[C, X, R]) R
}

// WithConstraint discharges C on X with the zero value of the evidence H
// and runs k. Missing evidence is a compile error.
//
// H must be a value type whose zero value is usable, as [Display], [Eq]
// and [Ord] are. Evidence written as a pointer type is nil here and panics.
func WithConstraint[H HasConstraint[C, X, R], C BiTypeCon, X, R any](k BiApp[C, X, R]) R {
	var h H
	return h.WithConstraint(k)
}

// DisplayConstraint is the constraint "X can be formatted as text".
type DisplayConstraint struct{ BiGeneric }

// DisplayCont is the application of [DisplayConstraint] to (X, R):
// a continuation that formats values of X with show.
type DisplayCont[X, R any] func(show func(X) string) R

// BiAppOf registers DisplayCont[X, R] as the application of [DisplayConstraint].
func (DisplayCont[X, R]) BiAppOf(DisplayConstraint, X, R) {}

// Display is evidence of [DisplayConstraint] for every fmt.Stringer.
type Display[X fmt.Stringer, R any] struct{}

// WithConstraint implements [HasConstraint].
func (Display[X, R]) WithConstraint(k BiApp[DisplayConstraint, X, R]) R {
	return UnwrapBi[DisplayCont[X, R]](k)(func(x X) string { return x.String() })
}

// WithDisplay runs k with the String method of X.
func WithDisplay[X fmt.Stringer, R any](k func(show func(X) string) R) R {
	return WithConstraint[Display[X, R]](WrapBi[DisplayConstraint, X, R](DisplayCont[X, R](k)))
}

// EqConstraint is the constraint "X supports equality".
type EqConstraint struct{ BiGeneric }

// EqCont is the application of [EqConstraint] to (X, R).
type EqCont[X, R any] func(eq func(X, X) bool) R

// BiAppOf registers EqCont[X, R] as the application of [EqConstraint].
func (EqCont[X, R]) BiAppOf(EqConstraint, X, R) {}

// Eq is evidence of [EqConstraint] for every comparable type.
type Eq[X comparable, R any] struct{}

// WithConstraint implements [HasConstraint].
func (Eq[X, R]) WithConstraint(k BiApp[EqConstraint, X, R]) R {
	return UnwrapBi[EqCont[X, R]](k)(func(a, b X) bool { return a == b })
}

// WithEq runs k with == on X.
func WithEq[X comparable, R any](k func(eq func(X, X) bool) R) R {
	return WithConstraint[Eq[X, R]](WrapBi[EqConstraint, X, R](EqCont[X, R](k)))
}

// OrdConstraint is the constraint "X is totally ordered".
type OrdConstraint struct{ BiGeneric }

// OrdCont is the application of [OrdConstraint] to (X, R).
// compare follows the convention of cmp.Compare.
type OrdCont[X, R any] func(compare func(X, X) int) R

// BiAppOf registers OrdCont[X, R] as the application of [OrdConstraint].
func (OrdCont[X, R]) BiAppOf(OrdConstraint, X, R) {}

// Ord is evidence of [OrdConstraint] for every cmp.Ordered type.
type Ord[X cmp.Ordered, R any] struct{}

// WithConstraint implements [HasConstraint].
func (Ord[X, R]) WithConstraint(k BiApp[OrdConstraint, X, R]) R {
	return UnwrapBi[OrdCont[X, R]](k)(cmp.Compare[X])
}

// WithOrd runs k with cmp.Compare on X.
func WithOrd[X cmp.Ordered, R any](k func(compare func(X, X) int) R) R {
	return WithConstraint[Ord[X, R]](WrapBi[OrdConstraint, X, R](OrdCont[X, R](k)))
}
