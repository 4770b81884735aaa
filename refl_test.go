// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/hkt"
)

func TestReflexiveCast(t *testing.T) {
	w := hkt.Reflexive[int]()
	if got := hkt.Cast(w, 42); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if got := hkt.CastBack(w, 7); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestSymmetricTwiceIsIdentity(t *testing.T) {
	w := hkt.Reflexive[string]()
	ww := hkt.Symmetric(hkt.Symmetric(w))
	for _, s := range []string{"", "a", "hello"} {
		if hkt.Cast(ww, s) != hkt.Cast(w, s) {
			t.Fatalf("Cast differs for %q", s)
		}
		if hkt.CastBack(ww, s) != hkt.CastBack(w, s) {
			t.Fatalf("CastBack differs for %q", s)
		}
	}
}

func TestTransitiveAssociative(t *testing.T) {
	ab := hkt.Reflexive[float64]()
	bc := hkt.Reflexive[float64]()
	cd := hkt.Reflexive[float64]()
	left := hkt.Transitive(hkt.Transitive(ab, bc), cd)
	right := hkt.Transitive(ab, hkt.Transitive(bc, cd))
	for _, x := range []float64{0, -1.5, 3.25} {
		if hkt.Cast(left, x) != hkt.Cast(right, x) {
			t.Fatalf("transitivity not associative at %v", x)
		}
	}
}

func TestTransitiveWithSymmetric(t *testing.T) {
	w := hkt.Reflexive[int]()
	round := hkt.Transitive(w, hkt.Symmetric(w))
	if got := hkt.Cast(round, 5); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestCongSlice(t *testing.T) {
	w := hkt.CongSlice(hkt.Reflexive[int]())
	got := hkt.Cast(w, []int{1, 2})
	if !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", got)
	}
}

func TestCongNilSlice(t *testing.T) {
	w := hkt.CongSlice(hkt.Reflexive[int]())
	if got := hkt.Cast(w, nil); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestCongOption(t *testing.T) {
	w := hkt.CongOption(hkt.Reflexive[string]())
	if got := hkt.Cast(w, hkt.Some("x")); got != hkt.Some("x") {
		t.Fatalf("got %v, want Some(x)", got)
	}
}

func TestCongPtr(t *testing.T) {
	x := 3
	w := hkt.CongPtr(hkt.Reflexive[int]())
	if got := hkt.Cast(w, &x); got != &x {
		t.Fatal("pointer changed identity")
	}
}

func TestCongFunc(t *testing.T) {
	w := hkt.CongFunc[string](hkt.Reflexive[int]())
	f := hkt.Cast(w, func(x int) string { return "ok" })
	if got := f(1); got != "ok" {
		t.Fatalf("got %q, want %q", got, "ok")
	}
}

func TestCongAppPreservesPayload(t *testing.T) {
	fa := hkt.WrapSlice(4, 5)
	w := hkt.CongApp[hkt.SliceF](hkt.Reflexive[int]())
	got := hkt.UnwrapSlice(hkt.Cast(w, fa))
	if !slices.Equal(got, []int{4, 5}) {
		t.Fatalf("got %v, want [4 5]", got)
	}
}

func TestCongWitness(t *testing.T) {
	fa := hkt.WrapOption(hkt.Some(1))
	w := hkt.CongWitness[int](hkt.Reflexive[hkt.OptionF]())
	if got := hkt.UnwrapOption(hkt.CastBack(w, fa)); got != hkt.Some(1) {
		t.Fatalf("got %v, want Some(1)", got)
	}
}

func TestCongTypeApp(t *testing.T) {
	w := hkt.CongTypeApp[string](hkt.Reflexive[hkt.IdentityF]())
	var fx hkt.TypeApp[hkt.IdentityF, string] = hkt.Identity[string]{Value: "v"}
	got := hkt.Cast(w, fx)
	if got.(hkt.Identity[string]).Value != "v" {
		t.Fatalf("got %v, want v", got)
	}
	var none hkt.TypeApp[hkt.IdentityF, string]
	if hkt.Cast(w, none) != nil {
		t.Fatal("nil packaged proof should stay nil")
	}
}

func TestCongApplied(t *testing.T) {
	w := hkt.CongApplied[hkt.SliceF, hkt.Slice[int], hkt.Slice[int]](hkt.Reflexive[int]())
	got := hkt.Cast(w, hkt.Slice[int]{9})
	if !slices.Equal(got, hkt.Slice[int]{9}) {
		t.Fatalf("got %v, want [9]", got)
	}
}

func TestReflectApplied(t *testing.T) {
	fa := hkt.WrapIdentity(8)
	got := hkt.UnwrapIdentity(hkt.ReflectApplied(hkt.Reflexive[int](), fa))
	if got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
}

func TestEqual(t *testing.T) {
	w, ok := hkt.Equal[int, int]()
	if !ok {
		t.Fatal("int should equal int")
	}
	if got := hkt.Cast(w, 3); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if _, ok := hkt.Equal[int, int64](); ok {
		t.Fatal("int should not equal int64")
	}
	if _, ok := hkt.Equal[hkt.Slice[int], []int](); ok {
		t.Fatal("named slice should not equal unnamed slice")
	}
}

// castGeneric moves a value between type parameters only when a witness
// proves them equal.
func castGeneric[A, B any](a A) (B, bool) {
	w, ok := hkt.Equal[A, B]()
	if !ok {
		var zero B
		return zero, false
	}
	return hkt.Cast(w, a), true
}

func TestEqualInGenericCode(t *testing.T) {
	if got, ok := castGeneric[string, string]("s"); !ok || got != "s" {
		t.Fatalf("got (%q, %v), want (s, true)", got, ok)
	}
	if _, ok := castGeneric[string, int]("s"); ok {
		t.Fatal("string should not cast to int")
	}
}

func TestNilWitnessPanics(t *testing.T) {
	defer func() {
		r := recover()
		if s, ok := r.(string); !ok || s != "hkt: nil equality witness" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	var w hkt.Refl[int, int]
	_ = hkt.Cast(w, 1)
}

func TestSymmetricNilWitnessPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on nil witness")
		}
	}()
	var w hkt.Refl[int, int]
	_ = hkt.Symmetric(w)
}
