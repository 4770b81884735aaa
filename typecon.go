// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Con marks a struct as a type-constructor witness.
// Embed it in a zero-size struct to declare a witness of kind Type -> Type:
//
//	type TreeF struct{ hkt.Con }
//
// A witness carries no data. It exists only to be passed as a type argument
// and later applied to an argument type through [TypeApp].
type Con struct{}

func (Con) typeCon() {}

// TypeCon is satisfied by every witness of kind Type -> Type.
// The method set is sealed; the only way to satisfy it is to embed [Con]
// or [Generic].
type TypeCon interface {
	typeCon()
}

// Generic marks a witness whose application is defined for every argument
// type. Embed it instead of [Con] when the applied type declares
// AppOf(F, X) for all X without bounds on X.
//
// Generic witnesses may be opened with [WithTypeApp]. Witnesses whose
// applied type bounds its argument (e.g. [ShowF]) embed [Con] and are
// rejected by [WithTypeApp] at compile time.
type Generic struct{ Con }

func (Generic) typeAppGeneric() {}

// TypeAppGeneric is satisfied by witnesses that embed [Generic].
type TypeAppGeneric interface {
	TypeCon
	typeAppGeneric()
}

// TypeApp is the phantom marker declared by the applied type of F at X.
//
// The applied type registers itself with a no-op method:
//
//	type Tree[X any] struct{ ... }
//	func (Tree[X]) AppOf(TreeF, X) {}
//
// Used as a constraint (FX TypeApp[F, X]) it is a static proof that FX is
// the application of F to X. Used as an interface value it is a packaged
// proof together with the payload; [WithTypeApp] hands such values to its
// continuation.
//
// For a fixed (F, X) exactly one type may declare AppOf(F, X). The handles
// check the registration at unwrap time and panic with
// "hkt: applied type mismatch" when two types claim the same application.
type TypeApp[F TypeCon, X any] interface {
	AppOf(F, X)
}

// BiCon marks a struct as a witness of kind Type -> Type -> Type.
type BiCon struct{}

func (BiCon) biTypeCon() {}

// BiTypeCon is satisfied by every binary witness.
type BiTypeCon interface {
	biTypeCon()
}

// BiGeneric marks a binary witness applicable to every pair of argument
// types.
type BiGeneric struct{ BiCon }

func (BiGeneric) biTypeAppGeneric() {}

// BiTypeAppGeneric is satisfied by binary witnesses that embed [BiGeneric].
type BiTypeAppGeneric interface {
	BiTypeCon
	biTypeAppGeneric()
}

// BiTypeApp is the phantom marker declared by the applied type of F at
// (X, Y). It plays the role of [TypeApp] for binary witnesses.
type BiTypeApp[F BiTypeCon, X, Y any] interface {
	BiAppOf(F, X, Y)
}
