// Package binder implements an ordered type-dispatch registry for rendering
// heterogeneous item collections.
//
// A list surface that displays many item shapes needs to answer three
// questions for every position: what kind of item is this, how do I build a
// view for it, and how do I fill that view with the item's data. Package
// binder answers all three without a central type switch: callers register an
// ordered sequence of Bindings, each pairing an item shape with a view shape
// plus optional content predicate, and the Registry resolves items to
// bindings by first-match precedence.
//
// # Core Types
//
// Binding[T, U, C] is one dispatch rule. T is the item shape it accepts
// (a concrete type, or an interface used as a capability check), U is the
// view shape it produces, and C is the opaque construction context handed to
// its constructor. Bindings are configured fluently:
//
//	b := binder.New[*feed.Note, *NoteView, RenderContext]().
//		Match(func(n *feed.Note) bool { return n.Headline }).
//		Create(func(ctx RenderContext) *NoteView { return newNoteView(ctx) }).
//		Populate(func(n *feed.Note, v *NoteView) { v.title = n.Name })
//
// Registry[I, V, C] owns the ordered rule sequence over the surface's base
// item type I and base view type V. Go methods cannot introduce type
// parameters, so registration is the free function Add, which erases a
// Binding to the registry's base types:
//
//	reg := binder.NewRegistry[feed.Item, ItemView, RenderContext]()
//	binder.Add(reg, b)
//
// # Dispatch Protocol
//
// Classify maps an item to the index of the first matching binding, or
// NoMatch (-1). The index is the join key between classification and the
// later CreateAt/PopulateAt calls, mirroring how list frameworks split
// "what view type is this position" from "create or rebind a view for it".
// Indices stay valid only while the binding sequence is unchanged; adding
// bindings after indices were handed out invalidates them.
//
// Registration order is precedence order. Register narrow rules before broad
// fallbacks; a registry without a catch-all binding can classify items to
// NoMatch, which the caller must check before using the index.
//
// # Concurrency
//
// The Registry performs no locking. Once the binding sequence is frozen,
// concurrent Classify/CreateAt/PopulateAt calls are safe; concurrent Add
// calls while readers run are a data race the caller must avoid.
package binder
