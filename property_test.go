// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt_test

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"code.hybscloud.com/hkt"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

// randInts returns a random slice of length [0, 8].
func randInts(rng *rand.Rand) []int {
	xs := make([]int, rng.IntN(9))
	for i := range xs {
		xs[i] = randInt(rng)
	}
	return xs
}

// randOption returns Some(randInt) or None with equal probability.
func randOption(rng *rand.Rand) hkt.Option[int] {
	if rng.IntN(2) == 0 {
		return hkt.None[int]()
	}
	return hkt.Some(randInt(rng))
}

// --- Group 1: Handles ---

// TestPropertyRoundTrip: Unwrap(Wrap(v)) ≡ v
func TestPropertyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randInts(rng)
		if got := hkt.UnwrapSlice(hkt.WrapSlice(xs...)); !slices.Equal(got, xs) {
			t.Fatalf("slice round trip: %v != %v", got, xs)
		}
		o := randOption(rng)
		if got := hkt.UnwrapOption(hkt.WrapOption(o)); got != o {
			t.Fatalf("option round trip: %v != %v", got, o)
		}
		s := randString(rng)
		if got := hkt.UnwrapIdentity(hkt.WrapIdentity(s)); got != s {
			t.Fatalf("identity round trip: %q != %q", got, s)
		}
	}
}

// TestPropertyBorrowIsPure: any number of Borrow calls leaves Unwrap unchanged
func TestPropertyBorrowIsPure(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randInts(rng)
		fa := hkt.WrapSlice(slices.Clone(xs)...)
		for range rng.IntN(4) {
			_ = hkt.Borrow[hkt.Slice[int]](fa)
		}
		if got := hkt.UnwrapSlice(fa); !slices.Equal(got, xs) {
			t.Fatalf("borrow changed payload: %v != %v", got, xs)
		}
	}
}

// TestPropertyMutationIsolation: writes through one handle never reach another
func TestPropertyMutationIsolation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		x := hkt.WrapIdentity(a)
		y := hkt.WrapIdentity(a)
		hkt.BorrowMut[hkt.Identity[int]](x).Value = randInt(rng)
		if got := hkt.UnwrapIdentity(y); got != a {
			t.Fatalf("isolation: %d != %d", got, a)
		}

		xs := randInts(rng)
		orig := hkt.WrapSlice(slices.Clone(xs)...)
		clone := hkt.CloneApp(orig)
		p := hkt.BorrowMut[hkt.Slice[int]](clone)
		for i := range *p {
			(*p)[i] = randInt(rng)
		}
		*p = append(*p, randInt(rng))
		if got := hkt.UnwrapSlice(orig); !slices.Equal(got, xs) {
			t.Fatalf("clone isolation: %v != %v", got, xs)
		}
	}
}

// TestPropertyGenericRecoveryAgrees: WithTypeApp observes what Unwrap returns
func TestPropertyGenericRecoveryAgrees(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		fa := hkt.WrapOption(randOption(rng))
		got := hkt.WithTypeAppFunc(fa, func(fx hkt.TypeApp[hkt.OptionF, int]) hkt.Option[int] {
			return fx.(hkt.Option[int])
		})
		if want := hkt.UnwrapOption(fa); got != want {
			t.Fatalf("recovery: %v != %v", got, want)
		}
	}
}

// --- Group 2: Equality witnesses ---

// TestPropertyReflLaws: Symmetric∘Symmetric ≡ id and Transitive is associative
func TestPropertyReflLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	w := hkt.Reflexive[int]()
	ss := hkt.Symmetric(hkt.Symmetric(w))
	left := hkt.Transitive(hkt.Transitive(w, w), w)
	right := hkt.Transitive(w, hkt.Transitive(w, w))
	for range propertyN {
		a := randInt(rng)
		if hkt.Cast(ss, a) != hkt.Cast(w, a) {
			t.Fatalf("double symmetry: %d", a)
		}
		if hkt.Cast(left, a) != hkt.Cast(right, a) {
			t.Fatalf("associativity: %d", a)
		}
	}
}

// --- Group 3: Functor and monad laws ---

// TestPropertySliceFunctorComposition: Map(Map(fa, f), g) ≡ Map(fa, g∘f)
func TestPropertySliceFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x*3 + 1 }
	g := strconv.Itoa
	for range propertyN {
		fa := hkt.WrapSlice(randInts(rng)...)
		left := hkt.MapApp[hkt.SliceMonad[int, string]](hkt.MapApp[hkt.SliceMonad[int, int]](fa, f), g)
		right := hkt.MapApp[hkt.SliceMonad[int, string]](fa, func(x int) string { return g(f(x)) })
		if !slices.Equal(hkt.UnwrapSlice(left), hkt.UnwrapSlice(right)) {
			t.Fatalf("composition: %v != %v", hkt.UnwrapSlice(left), hkt.UnwrapSlice(right))
		}
	}
}

// TestPropertyOptionMonadLaws: left identity, right identity and associativity
func TestPropertyOptionMonadLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	var m hkt.OptionMonad[int, int]
	f := func(x int) hkt.App[hkt.OptionF, int] {
		if x%3 == 0 {
			return hkt.WrapOption(hkt.None[int]())
		}
		return hkt.WrapOption(hkt.Some(x + 7))
	}
	g := func(x int) hkt.App[hkt.OptionF, int] {
		return hkt.WrapOption(hkt.Some(x * 2))
	}
	for range propertyN {
		a := randInt(rng)
		if l, r := hkt.UnwrapOption(m.Bind(m.Pure(a), f)), hkt.UnwrapOption(f(a)); l != r {
			t.Fatalf("left identity: %v != %v (a=%d)", l, r, a)
		}
		fa := hkt.WrapOption(randOption(rng))
		if l, r := hkt.UnwrapOption(m.Bind(fa, m.Pure)), hkt.UnwrapOption(fa); l != r {
			t.Fatalf("right identity: %v != %v", l, r)
		}
		l := hkt.UnwrapOption(m.Bind(m.Bind(fa, f), g))
		r := hkt.UnwrapOption(m.Bind(fa, func(x int) hkt.App[hkt.OptionF, int] { return m.Bind(f(x), g) }))
		if l != r {
			t.Fatalf("associativity: %v != %v", l, r)
		}
	}
}

// TestPropertyComposeFunctorAgrees: mapping a composition ≡ outer map of inner map
func TestPropertyComposeFunctorAgrees(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(6)
		elems := make([]optInt, n)
		for i := range elems {
			elems[i] = hkt.WrapOption(randOption(rng))
		}
		fa := hkt.WrapSlice(elems...)
		viaCompose := hkt.UnwrapCompose(hkt.MapApp[optionsInSlice](hkt.WrapCompose(fa), doubleShow))
		direct := hkt.MapApp[hkt.SliceMonad[optInt, optStr]](fa, func(o optInt) optStr {
			return hkt.MapApp[hkt.OptionMonad[int, string]](o, doubleShow)
		})
		if !slices.Equal(optionsOf(viaCompose), optionsOf(direct)) {
			t.Fatalf("compose: %v != %v", optionsOf(viaCompose), optionsOf(direct))
		}
	}
}

// TestPropertyDisplayDischarge: WithDisplay(show) ≡ String
func TestPropertyDisplayDischarge(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := hkt.Shown[hkt.Shown[label]]{Value: hkt.Shown[label]{Value: label(randString(rng))}}
		got := hkt.WithDisplay(func(show func(hkt.Shown[hkt.Shown[label]]) string) string {
			return show(v)
		})
		if got != v.String() {
			t.Fatalf("display: %q != %q", got, v.String())
		}
	}
}

// label is a fmt.Stringer used by display properties.
type label string

func (l label) String() string { return "<" + string(l) + ">" }
