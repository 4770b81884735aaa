// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hkt provides higher-kinded types, constraint kinds and type
// equality witnesses for Go generics.
//
// Go type parameters range over types of kind Type. This package lets
// code range over type constructors such as "slice of" or "option of" by
// passing a zero-size witness type F in place of the constructor and a
// handle [App][F, X] in place of "F applied to X".
//
// # Design Philosophy
//
// hkt provides:
//   - Defunctionalized type constructors: witnesses stand for constructors,
//     applied types register themselves with a phantom method
//   - Handles whose static type mentions only the witness and the argument
//   - Generic recovery of the applied value in continuation-passing style
//   - Compile-time rejection of every misuse the type checker can see;
//     the remaining misuse panics with a message prefixed "hkt: "
//
// # Witnesses and Application
//
//   - [Con], [Generic]: Embeddable markers declaring a witness
//   - [TypeCon]: Witnesses of kind Type -> Type
//   - [TypeAppGeneric]: Witnesses applicable to every argument type
//   - [TypeApp]: Phantom marker declared by the applied type
//
// An applied type declares its application with a no-op method:
//
//	type TreeF struct{ hkt.Generic }
//
//	type Tree[X any] struct{ Left, Right *Tree[X]; Value X }
//
//	func (Tree[X]) AppOf(TreeF, X) {}
//
// # Handles
//
//   - [App]: Handle around F applied to X
//   - [Wrap]: Box an applied value (one allocation)
//   - [Unwrap], [Borrow], [BorrowMut]: Recover the applied value by naming it
//   - [CloneApp]: Independent copy of a handle; payloads implementing
//     [Cloner] copy their own mutable state
//   - [Proof]: Zero-size token carrying a proven application
//
// # Generic Recovery
//
//   - [TypeAppCont], [ContFunc]: Continuation receiving the packaged payload
//   - [WithTypeApp]: Open a handle of a generic witness
//   - [WithTypeAppWitness]: Open through an equality witness, naming the payload
//   - [OpenCont]: Recovery as a [Cont] value
//   - [Once]: One-shot guard for continuations
//
// # Equality Witnesses
//
//   - [Refl]: Witness that two types are the same
//   - [Reflexive], [Symmetric], [Transitive]: Equivalence
//   - [CongApp], [CongWitness], [CongApplied], [CongSlice], [CongOption]: Congruence
//   - [Cast], [CastBack], [ReflectApplied]: Transport along a witness
//   - [Equal]: Run-time identity test yielding a witness
//
// # Binary Application and Functions
//
//   - [BiTypeCon], [BiTypeApp], [BiApp], [WrapBi], [UnwrapBi]: Kind Type -> Type -> Type
//   - [FunctionF], [FunctionMutF], [FunctionOnceF]: Function witnesses
//   - [IsFn], [IsFnMut], [IsFnOnce]: Nested call capabilities
//   - [Apply], [ApplyMut], [ApplyOnce]: Call through a handle
//
// # Constraint Kinds
//
//   - [HasConstraint], [WithConstraint]: Discharge a constraint by evidence
//   - [Display], [Eq], [Ord]: Evidence for fmt.Stringer, comparable, cmp.Ordered
//
// # Type Classes
//
//   - [Functor], [Applicative], [Monad]: Dictionaries over handles
//   - [MapApp], [MapFn], [PureApp], [ApplyApp], [BindApp]: Façades
//   - [ComposeFunctor]: Functor of a composition
//   - [NatTrans], [LiftApp]: Natural transformations
//
// # Rows
//
//   - [Top], [Cons]: Product rows, applied as [Product]
//   - [Bottom], [Union]: Sum rows, applied as [Sum] with [Inl] and [Inr]
//   - [AppRow], [WrapRow], [UnwrapRow], [BorrowRow], [BorrowMutRow]
//   - [LiftRow], [LiftRowApp]: A natural transformation per element,
//     chained with [LiftCons] or [LiftUnion]
//
// # Continuations
//
//   - [Cont], [Return], [Bind], [Map], [Then], [Run], [RunWith]
//   - [Shift], [Reset]: Delimited control
package hkt
