// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Rows.
//
// A row is a type-level list of argument types. Applying a row to a
// witness F applies F to every element:
//
//	Row                               Applied at F
//	Top                               Unit[F]
//	Cons[X, Tail]                     Product[F, X, Tail]
//	Bottom                            Void[F]
//	Union[X, Tail]                    Sum[F, X, Tail]
//
// Top and Cons build products, which hold one handle per element. Bottom
// and Union build sums, which hold exactly one handle. A row applied to F
// is the application of [RowF][F] to the row, so [AppRow] is an ordinary
// [App] and shares its box, clone and panic rules.

// Row is embedded by every row witness.
type Row struct{}

func (Row) rowCon() {}

// RowCon is satisfied by row witnesses.
type RowCon interface {
	rowCon()
}

type productTag struct{}

func (productTag) product() {}

type sumTag struct{}

func (sumTag) sum() {}

// IsProduct is satisfied by Top and by Cons chains ending in Top.
type IsProduct interface {
	RowCon
	product()
}

// IsSum is satisfied by Bottom and by Union chains ending in Bottom.
type IsSum interface {
	RowCon
	sum()
}

// Top is the empty product row.
type Top struct {
	Row
	productTag
}

// Cons prepends X to the product row Tail.
type Cons[X any, Tail IsProduct] struct {
	Row
	productTag
}

// Bottom is the empty sum row.
type Bottom struct {
	Row
	sumTag
}

// Union adds X as an alternative to the sum row Tail.
type Union[X any, Tail IsSum] struct {
	Row
	sumTag
}

// RowF is the witness of rows applied to F. Only row witnesses have
// applications, so it embeds [Con] and not [Generic].
type RowF[F TypeCon] struct{ Con }

// AppRow is the handle of the row R applied to F.
type AppRow[R RowCon, F TypeCon] = App[RowF[F], R]

// RowApp is satisfied by the applied type of R at F.
type RowApp[R RowCon, F TypeCon] = TypeApp[RowF[F], R]

// Unit is the application of Top to F.
type Unit[F TypeCon] struct{}

func (Unit[F]) AppOf(RowF[F], Top) {}

// Product is the application of Cons[X, Tail] to F.
type Product[F TypeCon, X any, Tail IsProduct] struct {
	Head App[F, X]
	Tail AppRow[Tail, F]
}

func (Product[F, X, Tail]) AppOf(RowF[F], Cons[X, Tail]) {}

// CloneApplied clones the head and the tail handles.
func (p Product[F, X, Tail]) CloneApplied() Product[F, X, Tail] {
	return Product[F, X, Tail]{Head: p.Head.CloneApplied(), Tail: p.Tail.CloneApplied()}
}

// Void is the application of Bottom to F. An empty sum has no
// alternatives, so a Void value carries nothing and cannot be lifted.
type Void[F TypeCon] struct{}

func (Void[F]) AppOf(RowF[F], Bottom) {}

// Sum is the application of Union[X, Tail] to F: either the handle of the
// first alternative (Inl) or a sum over the remaining ones (Inr).
type Sum[F TypeCon, X any, Tail IsSum] struct {
	inl  bool
	head App[F, X]
	tail AppRow[Tail, F]
}

func (Sum[F, X, Tail]) AppOf(RowF[F], Union[X, Tail]) {}

// Inl selects the first alternative.
func Inl[Tail IsSum, F TypeCon, X any](fx App[F, X]) Sum[F, X, Tail] {
	return Sum[F, X, Tail]{inl: true, head: fx}
}

// Inr selects an alternative of Tail.
func Inr[X any, Tail IsSum, F TypeCon](rest AppRow[Tail, F]) Sum[F, X, Tail] {
	return Sum[F, X, Tail]{tail: rest}
}

// IsInl reports whether s holds the first alternative.
func (s Sum[F, X, Tail]) IsInl() bool { return s.inl }

// Head returns the first alternative and true, or the zero handle and false.
func (s Sum[F, X, Tail]) Head() (App[F, X], bool) {
	return s.head, s.inl
}

// Tail returns the remaining sum and true when s is Inr.
func (s Sum[F, X, Tail]) Tail() (AppRow[Tail, F], bool) {
	return s.tail, !s.inl
}

// CloneApplied clones whichever handle s holds.
func (s Sum[F, X, Tail]) CloneApplied() Sum[F, X, Tail] {
	if s.inl {
		return Sum[F, X, Tail]{inl: true, head: s.head.CloneApplied()}
	}
	return Sum[F, X, Tail]{tail: s.tail.CloneApplied()}
}

// MatchSum calls onInl or onInr with the handle s holds.
func MatchSum[F TypeCon, X any, Tail IsSum, R any](s Sum[F, X, Tail], onInl func(App[F, X]) R, onInr func(AppRow[Tail, F]) R) R {
	if s.inl {
		return onInl(s.head)
	}
	return onInr(s.tail)
}

// WrapRow moves rf into a fresh box and returns its row handle.
func WrapRow[R RowCon, F TypeCon, RF RowApp[R, F]](rf RF) AppRow[R, F] {
	return Wrap[RowF[F], R](rf)
}

// UnwrapRow returns the applied row held by row:
//
//	p := hkt.UnwrapRow[hkt.Product[hkt.OptionF, int, hkt.Top]](row)
func UnwrapRow[RF RowApp[R, F], R RowCon, F TypeCon](row AppRow[R, F]) RF {
	return Unwrap[RF](row)
}

// BorrowRow returns a read view of the applied row, under the rules of
// [Borrow].
func BorrowRow[RF RowApp[R, F], R RowCon, F TypeCon](row AppRow[R, F]) RF {
	return Borrow[RF](row)
}

// BorrowMutRow returns a pointer into the box of row.
func BorrowMutRow[RF RowApp[R, F], R RowCon, F TypeCon](row AppRow[R, F]) *RF {
	return BorrowMut[RF](row)
}

// WrapTop returns the empty product at F.
func WrapTop[F TypeCon]() AppRow[Top, F] {
	return WrapRow[Top, F](Unit[F]{})
}

// WrapCons prepends head to the product tail.
func WrapCons[F TypeCon, X any, Tail IsProduct](head App[F, X], tail AppRow[Tail, F]) AppRow[Cons[X, Tail], F] {
	return WrapRow[Cons[X, Tail], F](Product[F, X, Tail]{Head: head, Tail: tail})
}

// WrapInl returns the sum holding fx as its first alternative.
func WrapInl[Tail IsSum, F TypeCon, X any](fx App[F, X]) AppRow[Union[X, Tail], F] {
	return WrapRow[Union[X, Tail], F](Inl[Tail](fx))
}

// WrapInr returns the sum holding an alternative of rest.
func WrapInr[X any, Tail IsSum, F TypeCon](rest AppRow[Tail, F]) AppRow[Union[X, Tail], F] {
	return WrapRow[Union[X, Tail], F](Inr[X](rest))
}

// RowCont is a continuation over the applied type of R at F.
type RowCont[R RowCon, F TypeCon, Res any] = TypeAppCont[RowF[F], R, Res]

// WithRowApp passes the applied row held by row to k. Every row witness
// has one applied type per F, so no recovery through [Generic] is needed.
func WithRowApp[R RowCon, F TypeCon, Res any](row AppRow[R, F], k RowCont[R, F, Res]) Res {
	return k.OnTypeApp(row.open())
}

// LiftRow maps every handle of the row R from F to G.
//
// Go has no generic methods, so one polymorphic [NatTrans] cannot be
// passed down a row. Instead a LiftRow instance is a chain of dictionaries,
// one [NatTrans] per element, built from [LiftTop] and [LiftCons] for
// products and from [LiftBottom] and [LiftUnion] for sums:
//
//	type liftPair = hkt.LiftCons[hkt.OptionToSlice[int],
//		hkt.LiftCons[hkt.OptionToSlice[string], hkt.LiftTop[hkt.OptionF, hkt.SliceF],
//			hkt.OptionF, hkt.SliceF, string, hkt.Top],
//		hkt.OptionF, hkt.SliceF, int, hkt.Cons[string, hkt.Top]]
type LiftRow[R RowCon, F, G TypeCon] interface {
	Lift(row AppRow[R, F]) AppRow[R, G]
}

// LiftRowApp applies the row lifting L to row. G is named with L because
// it does not occur in the argument.
func LiftRowApp[L LiftRow[R, F, G], G TypeCon, R RowCon, F TypeCon](row AppRow[R, F]) AppRow[R, G] {
	var l L
	return l.Lift(row)
}

// LiftTop lifts the empty product.
type LiftTop[F, G TypeCon] struct{}

func (LiftTop[F, G]) Lift(AppRow[Top, F]) AppRow[Top, G] {
	return WrapTop[G]()
}

// LiftCons lifts the head with N and the tail with LT.
type LiftCons[N NatTrans[F, G, X], LT LiftRow[Tail, F, G], F, G TypeCon, X any, Tail IsProduct] struct{}

func (LiftCons[N, LT, F, G, X, Tail]) Lift(row AppRow[Cons[X, Tail], F]) AppRow[Cons[X, Tail], G] {
	var n N
	var lt LT
	p := UnwrapRow[Product[F, X, Tail]](row)
	return WrapCons(n.Lift(p.Head), lt.Lift(p.Tail))
}

// LiftBottom lifts the empty sum. It has no values, so Lift panics.
type LiftBottom[F, G TypeCon] struct{}

func (LiftBottom[F, G]) Lift(AppRow[Bottom, F]) AppRow[Bottom, G] {
	emptySum()
	return AppRow[Bottom, G]{}
}

// LiftUnion lifts the first alternative with N and the others with LT.
type LiftUnion[N NatTrans[F, G, X], LT LiftRow[Tail, F, G], F, G TypeCon, X any, Tail IsSum] struct{}

func (LiftUnion[N, LT, F, G, X, Tail]) Lift(row AppRow[Union[X, Tail], F]) AppRow[Union[X, Tail], G] {
	s := UnwrapRow[Sum[F, X, Tail]](row)
	if fx, ok := s.Head(); ok {
		var n N
		return WrapInl[Tail](n.Lift(fx))
	}
	var lt LT
	return WrapInr[X](lt.Lift(s.tail))
}

//go:noinline
func emptySum() {
	panic("hkt: empty sum has no alternative")
}
