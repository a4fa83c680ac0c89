package binder

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// numItem is a minimal item shape for property tests; thresholded bindings
// carve the int line into arbitrary overlapping ranges.
type numItem struct {
	n int
}

// thresholdSpec describes one generated binding: unconditional, or matching
// items with n >= threshold.
type thresholdSpec struct {
	unconditional bool
	threshold     int
}

func (s thresholdSpec) accepts(item *numItem) bool {
	return s.unconditional || item.n >= s.threshold
}

func registryFromSpecs(specs []thresholdSpec) *Registry[*numItem, *rowView, buildCtx] {
	reg := NewRegistry[*numItem, *rowView, buildCtx]()
	for _, s := range specs {
		b := New[*numItem, *rowView, buildCtx]().
			Create(func(ctx buildCtx) *rowView { return &rowView{} })
		if !s.unconditional {
			threshold := s.threshold
			b.Match(func(item *numItem) bool { return item.n >= threshold })
		}
		Add(reg, b)
	}
	return reg
}

func TestRegistry_Property_FirstMatchPrecedence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		specs := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) thresholdSpec {
			return thresholdSpec{
				unconditional: rapid.Bool().Draw(t, "unconditional"),
				threshold:     rapid.IntRange(-100, 100).Draw(t, "threshold"),
			}
		}), 0, 16).Draw(t, "specs")
		item := &numItem{n: rapid.IntRange(-150, 150).Draw(t, "n")}

		reg := registryFromSpecs(specs)
		idx := reg.Classify(item)

		// Reference: the smallest accepting index, or NoMatch.
		want := NoMatch
		for i, s := range specs {
			if s.accepts(item) {
				want = i
				break
			}
		}
		require.Equal(t, want, idx)

		if idx != NoMatch {
			require.True(t, reg.rules[idx].matches(item))
			for j := range idx {
				require.False(t, reg.rules[j].matches(item), "binding %d before match %d must reject", j, idx)
			}
		}
	})
}

func TestRegistry_Property_ClassifyIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		specs := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) thresholdSpec {
			return thresholdSpec{
				unconditional: rapid.Bool().Draw(t, "unconditional"),
				threshold:     rapid.IntRange(-100, 100).Draw(t, "threshold"),
			}
		}), 0, 16).Draw(t, "specs")
		item := &numItem{n: rapid.IntRange(-150, 150).Draw(t, "n")}

		reg := registryFromSpecs(specs)

		first := reg.Classify(item)
		for range 3 {
			require.Equal(t, first, reg.Classify(item), "classification must be a pure function of (bindings, item)")
		}
	})
}

func TestRegistry_Property_OutOfRangeAlwaysErrIndexRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(0, 8).Draw(t, "count")
		specs := make([]thresholdSpec, count)
		for i := range specs {
			specs[i] = thresholdSpec{unconditional: true}
		}
		reg := registryFromSpecs(specs)

		idx := rapid.OneOf(
			rapid.IntRange(-10, -1),
			rapid.IntRange(count, count+10),
		).Draw(t, "idx")

		_, err := reg.CreateAt(idx, buildCtx{})
		require.ErrorIs(t, err, ErrIndexRange)
		require.ErrorIs(t, reg.PopulateAt(idx, &numItem{}, &rowView{}), ErrIndexRange)
	})
}
