// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt_test

import (
	"testing"

	"code.hybscloud.com/hkt"
)

var sinkApp hkt.App[hkt.IdentityF, int]

func TestWrapAllocations(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		sinkApp = hkt.Wrap[hkt.IdentityF, int](hkt.Identity[int]{Value: 1})
	})
	if allocs > 1 {
		t.Errorf("Wrap allocs = %v; want <= 1", allocs)
	}
}

func TestUnwrapAllocations(t *testing.T) {
	fa := hkt.WrapIdentity(7)
	allocs := testing.AllocsPerRun(100, func() {
		_ = hkt.Unwrap[hkt.Identity[int]](fa)
		_ = hkt.BorrowMut[hkt.Identity[int]](fa)
	})
	if allocs > 0 {
		t.Errorf("Unwrap/BorrowMut allocs = %v; want 0", allocs)
	}
}

func TestReflAllocations(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		w := hkt.Reflexive[int]()
		_ = hkt.Cast(hkt.Symmetric(hkt.Transitive(w, w)), 1)
	})
	if allocs > 0 {
		t.Errorf("Refl allocs = %v; want 0", allocs)
	}
}
