// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Reference witnesses.
//
// Four witnesses describe how a value of X is held, ordered by the access
// they grant:
//
//	RefF      Ref[X]      read through a shared pointer
//	MutRefF   MutRef[X]   read and write through a pointer
//	OwnF      Own[X]      held by value; can be taken out
//	BoxF      Box[X]      held on the heap; yields a stable pointer
//
// Each grants everything the previous one does, so GetRef accepts every
// reference witness and GetBox only BoxF.

type refTag struct{}

func (refTag) isRef() {}

type mutRefTag struct{ refTag }

func (mutRefTag) isMutRef() {}

type ownTag struct{ mutRefTag }

func (ownTag) isOwn() {}

type boxTag struct{ ownTag }

func (boxTag) isBox() {}

// IsRef is satisfied by witnesses that allow reading X.
type IsRef interface {
	TypeCon
	isRef()
}

// IsMutRef is satisfied by witnesses that allow writing X.
type IsMutRef interface {
	IsRef
	isMutRef()
}

// IsOwn is satisfied by witnesses that own X.
type IsOwn interface {
	IsMutRef
	isOwn()
}

// IsBox is satisfied by witnesses that own X on the heap.
type IsBox interface {
	IsOwn
	isBox()
}

// RefF is the witness of shared read-only references.
type RefF struct {
	Generic
	refTag
}

// MutRefF is the witness of writable references.
type MutRefF struct {
	Generic
	mutRefTag
}

// OwnF is the witness of owned values.
type OwnF struct {
	Generic
	ownTag
}

// BoxF is the witness of owned heap values.
type BoxF struct {
	Generic
	boxTag
}

// Ref is the application of [RefF] to X.
type Ref[X any] struct{ p *X }

// Get returns the referenced value.
func (r Ref[X]) Get() X { return *r.p }

func (Ref[X]) AppOf(RefF, X) {}

func (r *Ref[X]) pointer() *X { return r.p }

// MutRef is the application of [MutRefF] to X.
type MutRef[X any] struct{ p *X }

// Get returns the referenced value.
func (r MutRef[X]) Get() X { return *r.p }

// Set overwrites the referenced value.
func (r MutRef[X]) Set(x X) { *r.p = x }

func (MutRef[X]) AppOf(MutRefF, X) {}

func (r *MutRef[X]) pointer() *X { return r.p }

// Own is the application of [OwnF] to X.
type Own[X any] struct{ Value X }

func (Own[X]) AppOf(OwnF, X) {}

func (o *Own[X]) pointer() *X { return &o.Value }

// Box is the application of [BoxF] to X.
type Box[X any] struct{ p *X }

// Get returns the boxed value.
func (b Box[X]) Get() X { return *b.p }

func (Box[X]) AppOf(BoxF, X) {}

// CloneApplied moves a copy of the value to a new heap cell.
func (b Box[X]) CloneApplied() Box[X] {
	v := *b.p
	return Box[X]{p: &v}
}

func (b *Box[X]) pointer() *X { return b.p }

// referent is implemented by a pointer to every applied reference type.
type referent[X any] interface {
	pointer() *X
}

// NewRef returns a read-only handle to *p.
func NewRef[X any](p *X) App[RefF, X] {
	return Wrap[RefF, X](Ref[X]{p: p})
}

// NewMutRef returns a writable handle to *p.
func NewMutRef[X any](p *X) App[MutRefF, X] {
	return Wrap[MutRefF, X](MutRef[X]{p: p})
}

// NewOwn returns a handle owning x.
func NewOwn[X any](x X) App[OwnF, X] {
	return Wrap[OwnF, X](Own[X]{Value: x})
}

// NewBox returns a handle owning a heap copy of x.
func NewBox[X any](x X) App[BoxF, X] {
	return Wrap[BoxF, X](Box[X]{p: &x})
}

// GetRef reads the value behind any reference handle.
func GetRef[F IsRef, X any](fa App[F, X]) X {
	return *pointerOf(fa)
}

// GetMutRef returns a pointer through which the value behind fa may be
// changed. Rejects [RefF] at compile time.
func GetMutRef[F IsMutRef, X any](fa App[F, X]) *X {
	return pointerOf(fa)
}

// GetOwn takes the value out of an owning handle.
func GetOwn[F IsOwn, X any](fa App[F, X]) X {
	return *pointerOf(fa)
}

// GetBox returns the stable heap pointer of a boxed handle.
func GetBox[F IsBox, X any](fa App[F, X]) *X {
	return pointerOf(fa)
}

func pointerOf[F TypeCon, X any](fa App[F, X]) *X {
	if fa.box == nil {
		emptyApp()
	}
	r, ok := fa.box.ref().(referent[X])
	if !ok {
		mismatch()
	}
	return r.pointer()
}
