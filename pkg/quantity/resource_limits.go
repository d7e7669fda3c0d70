package quantity

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/zagrev/mesos/pkg/values"
)

// ResourceLimits is a collection of named scalar caps kept strictly sorted by
// name with no duplicates. Unlike ResourceQuantities, a stored zero is
// meaningful: it forbids any usage of that resource, while an absent name
// means the resource is unbounded. The zero value is empty (everything
// unbounded) and ready to use.
type ResourceLimits struct {
	limits []Entry
}

// ParseLimits parses `name:value(;name:value)*` text into limits. Names are
// trimmed of surrounding whitespace only. Zero values are preserved, and a
// repeated name is an error rather than accumulated.
func ParseLimits(text string) (ResourceLimits, error) {
	var result ResourceLimits

	pairs, err := parsePairs(text, "limit")
	if err != nil {
		return ResourceLimits{}, err
	}

	for _, p := range pairs {
		if _, ok := result.Get(p.name); ok {
			return ResourceLimits{}, errors.Errorf(
				"failed to parse '%s' to limit: duplicate names are not allowed", p.value)
		}
		result.Set(p.name, p.scalar)
	}

	return result, nil
}

// LimitsFromMap builds limits from a name-to-cap map.
func LimitsFromMap(caps map[string]float64) ResourceLimits {
	var result ResourceLimits

	for name, bound := range caps {
		result.Set(name, values.NewScalar(bound))
	}

	return result
}

// Get returns the cap stored for the name and whether one is present. An
// absent name means the resource is unbounded, which is not the same as a
// stored zero.
func (l ResourceLimits) Get(name string) (values.Scalar, bool) {
	// Linear scan with early exit, as in ResourceQuantities.Get.
	for _, e := range l.limits {
		if e.Name == name {
			return e.Scalar, true
		}
		if e.Name > name {
			break
		}
	}

	return values.Scalar{}, false
}

// Set stores the cap for the name, overwriting any existing cap and otherwise
// inserting at the sorted position. The value is stored as given; validity is
// enforced at parse time, not here.
func (l *ResourceLimits) Set(name string, scalar values.Scalar) {
	for i, e := range l.limits {
		if e.Name == name {
			l.limits[i].Scalar = scalar
			return
		}
		if e.Name > name {
			l.limits = append(l.limits, Entry{})
			copy(l.limits[i+1:], l.limits[i:])
			l.limits[i] = Entry{Name: name, Scalar: scalar}
			return
		}
	}

	l.limits = append(l.limits, Entry{Name: name, Scalar: scalar})
}

// ContainsLimits reports whether every cap in this set covers the
// corresponding cap in other. A finite cap here whose name is unbounded in
// other is never covered, while a name unbounded here is always satisfied no
// matter what other caps it at. Callers depend on this exact directionality;
// do not "fix" it into a symmetric comparison.
func (l ResourceLimits) ContainsLimits(other ResourceLimits) bool {
	left, right := 0, 0

	// Both sides are sorted by name, so walk them together.
	for left < len(l.limits) && right < len(other.limits) {
		le, re := l.limits[left], other.limits[right]

		switch {
		case le.Name < re.Name:
			// Finite cap here, unbounded in other.
			return false
		case le.Name > re.Name:
			// Unbounded here, finite cap in other.
			right++
		default:
			if le.Scalar.LessThan(re.Scalar) {
				return false
			}
			left++
			right++
		}
	}

	// Finite caps left over here have no counterpart in other.
	return left >= len(l.limits)
}

// ContainsQuantities reports whether the given usage fits within these caps:
// every quantity with a configured cap must not exceed it, and quantities
// with no configured cap always fit. This is the admission-control check.
func (l ResourceLimits) ContainsQuantities(quantities ResourceQuantities) bool {
	for _, e := range quantities.quantities {
		if limit, ok := l.Get(e.Name); ok && limit.LessThan(e.Scalar) {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (l ResourceLimits) Clone() ResourceLimits {
	return ResourceLimits{limits: append([]Entry(nil), l.limits...)}
}

// Entries returns a copy of the entries in ascending name order.
func (l ResourceLimits) Entries() []Entry {
	return append([]Entry(nil), l.limits...)
}

// Len returns the number of entries.
func (l ResourceLimits) Len() int {
	return len(l.limits)
}

func (l ResourceLimits) String() string {
	if len(l.limits) == 0 {
		return "{}"
	}

	parts := make([]string, 0, len(l.limits))
	for _, e := range l.limits {
		parts = append(parts, e.Name+":"+e.Scalar.String())
	}
	return strings.Join(parts, "; ")
}
