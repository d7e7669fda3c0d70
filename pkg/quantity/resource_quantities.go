package quantity

import (
	"strings"

	"github.com/zagrev/mesos/pkg/check"
	"github.com/zagrev/mesos/pkg/resources"
	"github.com/zagrev/mesos/pkg/values"
)

// ResourceQuantities is a collection of named scalar amounts kept strictly
// sorted by name with no duplicates. Zero amounts are never stored: adding
// zero is a no-op and subtraction removes any entry it drives to or below
// zero, so absence and zero are indistinguishable here. The zero value is
// empty, ready to use, and is the additive identity.
type ResourceQuantities struct {
	quantities []Entry
}

// ParseQuantities parses `name:value(;name:value)*` text into quantities.
// Names are trimmed of surrounding whitespace only, so "c p us:10" parses to
// the name "c p us". A repeated name accumulates; a zero value is silently
// dropped.
func ParseQuantities(text string) (ResourceQuantities, error) {
	var result ResourceQuantities

	pairs, err := parsePairs(text, "quantity")
	if err != nil {
		return ResourceQuantities{}, err
	}

	for _, p := range pairs {
		if p.scalar.IsZero() {
			continue
		}
		result.Add(p.name, p.scalar)
	}

	return result, nil
}

// FromScalarResources sums the given resources into quantities, grouping by
// name. Every resource must be scalar-kind; this path is only fed
// pre-validated scalar resources, so a non-scalar input is a caller bug and
// panics.
func FromScalarResources(rs []resources.Resource) ResourceQuantities {
	var result ResourceQuantities

	for _, r := range rs {
		check.Panic(check.True(r.Kind == values.SCALAR,
			"resource %s is %s, expected scalar", r.Name, r.Kind))
		result.Add(r.Name, r.Scalar)
	}

	return result
}

// QuantitiesFromMap sums the entries of a name-to-amount map into quantities.
// All amounts must be non-negative.
func QuantitiesFromMap(amounts map[string]float64) ResourceQuantities {
	var result ResourceQuantities

	for name, amount := range amounts {
		result.Add(name, values.NewScalar(amount))
	}

	return result
}

// Get returns the amount stored for the name, or the zero scalar if absent.
func (q ResourceQuantities) Get(name string) values.Scalar {
	// Linear scan; entry counts are a handful to a few dozen at most, and
	// sortedness lets us stop early.
	for _, e := range q.quantities {
		if e.Name == name {
			return e.Scalar
		}
		if e.Name > name {
			break
		}
	}

	return values.Scalar{}
}

// Add accumulates the amount into the named entry, inserting it at its sorted
// position if absent. The amount must be non-negative; adding zero is a
// no-op.
func (q *ResourceQuantities) Add(name string, scalar values.Scalar) {
	check.Panic(check.True(!scalar.IsNegative(),
		"cannot add negative quantity %s to %s", scalar, name))

	if scalar.IsZero() {
		return
	}

	for i, e := range q.quantities {
		if e.Name == name {
			q.quantities[i].Scalar = e.Scalar.Add(scalar)
			return
		}
		if e.Name > name {
			q.insert(i, Entry{Name: name, Scalar: scalar})
			return
		}
	}

	q.quantities = append(q.quantities, Entry{Name: name, Scalar: scalar})
}

func (q *ResourceQuantities) insert(i int, e Entry) {
	q.quantities = append(q.quantities, Entry{})
	copy(q.quantities[i+1:], q.quantities[i:])
	q.quantities[i] = e
}

// Contains reports whether every amount in other is covered by this set:
// each name present in other must be present here with at least as large an
// amount. Extra names here are irrelevant.
func (q ResourceQuantities) Contains(other ResourceQuantities) bool {
	left, right := 0, 0

	// Both sides are sorted by name, so walk them together.
	for left < len(q.quantities) && right < len(other.quantities) {
		l, r := q.quantities[left], other.quantities[right]

		switch {
		case l.Name < r.Name:
			// Present on the left only.
			left++
		case l.Name > r.Name:
			// Present on the right only; an implicit zero here cannot cover it.
			return false
		default:
			if l.Scalar.LessThan(r.Scalar) {
				return false
			}
			left++
			right++
		}
	}

	// Anything left over on the right is uncovered.
	return right >= len(other.quantities)
}

// Equal reports exact structural equality: same names with the same amounts.
func (q ResourceQuantities) Equal(other ResourceQuantities) bool {
	if len(q.quantities) != len(other.quantities) {
		return false
	}
	for i, e := range q.quantities {
		if e.Name != other.quantities[i].Name || !e.Scalar.Equal(other.quantities[i].Scalar) {
			return false
		}
	}
	return true
}

// AddAll merges other into this set in place, summing matching names and
// inserting names present only in other at their sorted positions.
func (q *ResourceQuantities) AddAll(other ResourceQuantities) {
	left, right := 0, 0

	for left < len(q.quantities) && right < len(other.quantities) {
		l, r := q.quantities[left], other.quantities[right]

		switch {
		case l.Name < r.Name:
			left++
		case l.Name > r.Name:
			q.insert(left, r)
			left++
			right++
		default:
			q.quantities[left].Scalar = l.Scalar.Add(r.Scalar)
			left++
			right++
		}
	}

	q.quantities = append(q.quantities, other.quantities[right:]...)
}

// SubtractAll subtracts other from this set in place, saturating at zero: a
// matching entry whose amount would drop to or below zero is removed rather
// than stored as zero or negative, and names present only in other are
// ignored (subtracting from an implicit zero stays zero). Because of the
// clamping this is not invertible.
func (q *ResourceQuantities) SubtractAll(other ResourceQuantities) {
	// Removal shifts our backing array in place; if other shares it, the walk
	// would read already-shifted entries. Snapshot other in that case so
	// q.SubtractAll(q) empties q.
	if len(q.quantities) > 0 && len(other.quantities) > 0 &&
		&q.quantities[0] == &other.quantities[0] {
		other = other.Clone()
	}

	left, right := 0, 0

	for left < len(q.quantities) && right < len(other.quantities) {
		l, r := q.quantities[left], other.quantities[right]

		switch {
		case l.Name < r.Name:
			left++
		case l.Name > r.Name:
			right++
		default:
			if l.Scalar.LessThanOrEqual(r.Scalar) {
				q.quantities = append(q.quantities[:left], q.quantities[left+1:]...)
			} else {
				q.quantities[left].Scalar = l.Scalar.Sub(r.Scalar)
				left++
			}
			right++
		}
	}
}

// Plus returns the merge of the two sets, leaving both operands untouched.
func (q ResourceQuantities) Plus(other ResourceQuantities) ResourceQuantities {
	result := q.Clone()
	result.AddAll(other)
	return result
}

// Minus returns the saturating difference of the two sets, leaving both
// operands untouched.
func (q ResourceQuantities) Minus(other ResourceQuantities) ResourceQuantities {
	result := q.Clone()
	result.SubtractAll(other)
	return result
}

// Clone returns an independent copy.
func (q ResourceQuantities) Clone() ResourceQuantities {
	return ResourceQuantities{quantities: append([]Entry(nil), q.quantities...)}
}

// Entries returns a copy of the entries in ascending name order.
func (q ResourceQuantities) Entries() []Entry {
	return append([]Entry(nil), q.quantities...)
}

// Len returns the number of entries.
func (q ResourceQuantities) Len() int {
	return len(q.quantities)
}

func (q ResourceQuantities) String() string {
	if len(q.quantities) == 0 {
		return "{}"
	}

	parts := make([]string, 0, len(q.quantities))
	for _, e := range q.quantities {
		parts = append(parts, e.Name+":"+e.Scalar.String())
	}
	return strings.Join(parts, "; ")
}
