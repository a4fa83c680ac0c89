package binder

// Binding pairs one item shape with the view shape that renders it.
//
// T is the item type the binding accepts. When T is a concrete type the
// match is exact type identity; when T is an interface the match is a
// capability check, which is how broader "base type or subtype" rules are
// expressed. U is the view type produced by the constructor and mutated by
// the populator. C is the construction context, opaque to the binding
// machinery and passed through to the constructor unchanged.
//
// A Binding holds no per-item state and is never mutated by a Registry, so
// one Binding may be registered into several registries.
type Binding[T, U, C any] struct {
	predicate func(T) bool
	construct func(C) U
	populator func(T, U)
}

// New creates an unconfigured Binding. The three type arguments play the
// role of the runtime type descriptors a dynamic language would pass in:
//
//	binder.New[*feed.ColorNote, *NoteView, RenderContext]()
func New[T, U, C any]() *Binding[T, U, C] {
	return &Binding[T, U, C]{}
}

// Match sets an optional content predicate, consulted only after the item
// already passed the type check. Without a predicate the binding matches
// every item of its type. Returns the binding for chaining.
func (b *Binding[T, U, C]) Match(predicate func(item T) bool) *Binding[T, U, C] {
	b.predicate = predicate
	return b
}

// Create sets the view constructor. A binding cannot serve CreateAt calls
// until a constructor is configured; attempting to do so fails with
// ErrNoConstructor. Returns the binding for chaining.
func (b *Binding[T, U, C]) Create(fn func(ctx C) U) *Binding[T, U, C] {
	b.construct = fn
	return b
}

// Populate sets the optional populator that copies item data into an
// existing view. Without one, populating through this binding is a no-op.
// Returns the binding for chaining.
func (b *Binding[T, U, C]) Populate(fn func(item T, view U)) *Binding[T, U, C] {
	b.populator = fn
	return b
}

// matches reports whether an item that already passed the type check
// satisfies the predicate. The type check happens in Add's erasure wrapper,
// so the predicate is never invoked on an item of the wrong type.
func (b *Binding[T, U, C]) matches(item T) bool {
	if b.predicate != nil {
		return b.predicate(item)
	}
	return true
}

// build invokes the constructor with the caller's context.
func (b *Binding[T, U, C]) build(ctx C) (U, error) {
	if b.construct == nil {
		var zero U
		return zero, ErrNoConstructor
	}
	return b.construct(ctx), nil
}

// bind invokes the populator if one is configured.
func (b *Binding[T, U, C]) bind(item T, view U) {
	if b.populator != nil {
		b.populator(item, view)
	}
}
