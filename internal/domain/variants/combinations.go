package variants

import (
	"errors"
	"strings"

	"comercial_xpto/internal/domain/entities"
)

var (
	ErrEmptyAxisName   = errors.New("variation axis has no name")
	ErrEmptyAxisValues = errors.New("variation axis has no values")
	ErrBlankAxisValue  = errors.New("variation axis has a blank value")
)

// AttributePair is one (axis, chosen value) entry of a combination. The
// slice form keeps the axis order, which Go maps would lose.
type AttributePair struct {
	Axis  string
	Value string
}

// Combination is one point of the cartesian product: exactly one value per
// axis, in axis order.
type Combination []AttributePair

// Map returns the combination as the attribute map stored on a SKU.
func (c Combination) Map() map[string]string {
	m := make(map[string]string, len(c))
	for _, p := range c {
		m[p.Axis] = p.Value
	}
	return m
}

// Values returns the chosen values in axis order.
func (c Combination) Values() []string {
	vs := make([]string, len(c))
	for i, p := range c {
		vs[i] = p.Value
	}
	return vs
}

// GenerateCombinations expands the variation axes into their cartesian
// product. An empty axis list yields exactly one empty combination, so a
// product without variations still produces a single default SKU.
//
// Order is deterministic: the first axis varies slowest, each axis's values
// in their declared order. Axes are validated up front; an axis with no
// name, no values or a blank value is a generation error.
func GenerateCombinations(axes []entities.VariationAxis) ([]Combination, error) {
	for _, axis := range axes {
		if strings.TrimSpace(axis.Name) == "" {
			return nil, ErrEmptyAxisName
		}
		if len(axis.Values) == 0 {
			return nil, ErrEmptyAxisValues
		}
		for _, v := range axis.Values {
			if strings.TrimSpace(v) == "" {
				return nil, ErrBlankAxisValue
			}
		}
	}
	return expand(axes), nil
}

func expand(axes []entities.VariationAxis) []Combination {
	if len(axes) == 0 {
		return []Combination{{}}
	}

	first, rest := axes[0], axes[1:]
	tails := expand(rest)

	out := make([]Combination, 0, len(first.Values)*len(tails))
	for _, value := range first.Values {
		for _, tail := range tails {
			combo := make(Combination, 0, 1+len(tail))
			combo = append(combo, AttributePair{Axis: first.Name, Value: value})
			combo = append(combo, tail...)
			out = append(out, combo)
		}
	}
	return out
}
