package binder

import (
	"errors"
	"fmt"
)

// NoMatch is the classification result for an item no binding accepts.
// It is a valid Classify outcome, not an error; passing it to CreateAt or
// PopulateAt fails with ErrIndexRange.
const NoMatch = -1

// Registry errors. All signal caller-contract violations and are never
// recovered from internally.
var (
	ErrNoConstructor = errors.New("binding has no constructor configured")
	ErrIndexRange    = errors.New("binding index out of range")
	ErrTypeMismatch  = errors.New("type does not match the binding")
)

// rule is a Binding erased to the registry's base types. The closures carry
// the type test, so the registry's dispatch loop stays type-agnostic.
type rule[I, V, C any] struct {
	matches  func(I) bool
	create   func(C) (V, error)
	populate func(I, V) error
}

// Registry is an ordered sequence of bindings over base item type I, base
// view type V, and construction context C. Insertion order is precedence
// order and duplicates are legal; overlaps resolve purely by order.
//
// A Registry holds no per-item state. Classification is a pure function of
// the binding sequence and the item.
type Registry[I, V, C any] struct {
	rules []rule[I, V, C]
}

// NewRegistry creates an empty registry.
func NewRegistry[I, V, C any]() *Registry[I, V, C] {
	return &Registry[I, V, C]{}
}

// Add appends a binding to r. It is a free function rather than a method
// because the binding's concrete types T and U are erased here and Go
// methods cannot carry their own type parameters.
//
// T must be assertable from I (a concrete item type, or an interface the
// relevant items implement) and U must satisfy the registry's base view
// type V; neither relationship is expressible as a compile-time constraint,
// so both are verified at runtime and violations surface as ErrTypeMismatch.
//
// Returns r so call sites can chain registrations. Appending after Classify
// results were handed out invalidates those indices; the registry does not
// guard against stale indices beyond the range check.
func Add[T, U, I, V, C any](r *Registry[I, V, C], b *Binding[T, U, C]) *Registry[I, V, C] {
	r.rules = append(r.rules, rule[I, V, C]{
		matches: func(item I) bool {
			// Type check first; the predicate never sees a wrong-typed item.
			t, ok := any(item).(T)
			if !ok {
				return false
			}
			return b.matches(t)
		},
		create: func(ctx C) (V, error) {
			u, err := b.build(ctx)
			if err != nil {
				var zero V
				return zero, err
			}
			v, ok := any(u).(V)
			if !ok {
				var zero V
				return zero, fmt.Errorf("view %T does not satisfy the registry view type: %w", u, ErrTypeMismatch)
			}
			return v, nil
		},
		populate: func(item I, view V) error {
			t, ok := any(item).(T)
			if !ok {
				return fmt.Errorf("item %T is not the binding's item type: %w", item, ErrTypeMismatch)
			}
			u, ok := any(view).(U)
			if !ok {
				return fmt.Errorf("view %T is not the binding's view type: %w", view, ErrTypeMismatch)
			}
			b.bind(t, u)
			return nil
		},
	})
	return r
}

// Classify returns the index of the first binding whose type test and
// predicate accept item, or NoMatch. Callers must check for NoMatch before
// using the index.
func (r *Registry[I, V, C]) Classify(item I) int {
	for i := range r.rules {
		if r.rules[i].matches(item) {
			return i
		}
	}
	return NoMatch
}

// CreateAt constructs a view through the binding at index, passing ctx to
// its constructor unchanged. index is a previous Classify result; anything
// outside the binding sequence, including NoMatch, fails with ErrIndexRange.
func (r *Registry[I, V, C]) CreateAt(index int, ctx C) (V, error) {
	if index < 0 || index >= len(r.rules) {
		var zero V
		return zero, fmt.Errorf("create at index %d of %d bindings: %w", index, len(r.rules), ErrIndexRange)
	}
	return r.rules[index].create(ctx)
}

// PopulateAt copies item data into view through the binding at index. A
// binding without a populator makes this a no-op. Same index contract as
// CreateAt; an item or view that fails the binding's type assertions fails
// with ErrTypeMismatch, since index was classified for a different item or
// the view came from a different binding.
func (r *Registry[I, V, C]) PopulateAt(index int, item I, view V) error {
	if index < 0 || index >= len(r.rules) {
		return fmt.Errorf("populate at index %d of %d bindings: %w", index, len(r.rules), ErrIndexRange)
	}
	return r.rules[index].populate(item, view)
}

// Populate reclassifies item and populates view through the first matching
// binding. An unmatched item surfaces as ErrIndexRange, since the internal
// NoMatch index is consumed immediately.
func (r *Registry[I, V, C]) Populate(item I, view V) error {
	return r.PopulateAt(r.Classify(item), item, view)
}

// Len returns the number of registered bindings.
func (r *Registry[I, V, C]) Len() int {
	return len(r.rules)
}
