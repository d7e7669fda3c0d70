package quantity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zagrev/mesos/pkg/resources"
	"github.com/zagrev/mesos/pkg/values"
)

func quantities(t *testing.T, text string) ResourceQuantities {
	t.Helper()
	result, err := ParseQuantities(text)
	require.NoError(t, err)
	return result
}

func TestParseQuantities(t *testing.T) {
	result := quantities(t, "cpus:10;mem:1024")
	require.Equal(t, 2, result.Len())
	require.True(t, result.Get("cpus").Equal(values.NewScalar(10)))
	require.True(t, result.Get("mem").Equal(values.NewScalar(1024)))
	require.Equal(t, "cpus:10; mem:1024", result.String())

	// Whitespace around names and values is trimmed; inner whitespace in a
	// name is preserved.
	result = quantities(t, " cpus : 10 ; mem : 1024 ")
	require.Equal(t, "cpus:10; mem:1024", result.String())

	result = quantities(t, "c p us:10")
	require.True(t, result.Get("c p us").Equal(values.NewScalar(10)))

	// Unsorted input comes out sorted.
	result = quantities(t, "mem:1024;disk:512;cpus:10")
	require.Equal(t, "cpus:10; disk:512; mem:1024", result.String())
}

func TestParseQuantitiesDropsZero(t *testing.T) {
	result := quantities(t, "cpus:0;mem:5")
	require.Equal(t, 1, result.Len())
	require.True(t, result.Get("mem").Equal(values.NewScalar(5)))
	require.True(t, result.Get("cpus").IsZero())
}

func TestParseQuantitiesSumsDuplicates(t *testing.T) {
	result := quantities(t, "cpus:10;cpus:5")
	require.Equal(t, 1, result.Len())
	require.True(t, result.Get("cpus").Equal(values.NewScalar(15)))
}

func TestParseQuantitiesErrors(t *testing.T) {
	for text, message := range map[string]string{
		"cpus":          "missing or extra ':'",
		"cpus:10:5":     "missing or extra ':'",
		"cpus:":         "missing or extra ':'",
		":10":           "missing or extra ':'",
		"cpus:-1":       "negative values are not allowed",
		"cpus:[1-10]":   "only scalar values are allowed",
		"cpus:{a,b}":    "only scalar values are allowed",
		"cpus:abc":      "only scalar values are allowed",
		"cpus:[1-10":    "to quantity",
		"cpus:1;mem:-5": "negative values are not allowed",
	} {
		_, err := ParseQuantities(text)
		require.Error(t, err, text)
		require.ErrorContains(t, err, message, text)
	}
}

func TestParseQuantitiesEmpty(t *testing.T) {
	for _, text := range []string{"", ";", " ; "} {
		result, err := ParseQuantities(text)
		if text == " ; " {
			// A whitespace-only token is not empty and lacks a ':'.
			require.Error(t, err)
			continue
		}
		require.NoError(t, err, text)
		require.Equal(t, 0, result.Len())
		require.Equal(t, "{}", result.String())
	}
}

func TestQuantitiesRoundTrip(t *testing.T) {
	original := quantities(t, "cpus:1.5;disk:512;mem:1024")
	parsed := quantities(t, original.String())
	require.True(t, original.Equal(parsed))
}

func TestFromScalarResources(t *testing.T) {
	result := FromScalarResources([]resources.Resource{
		resources.NewScalar("mem", 512),
		resources.NewScalar("cpus", 4),
		resources.NewScalar("mem", 512),
	})
	require.Equal(t, "cpus:4; mem:1024", result.String())

	require.Panics(t, func() {
		FromScalarResources([]resources.Resource{
			{Name: "ports", Kind: values.RANGES},
		})
	})
}

func TestQuantitiesAdd(t *testing.T) {
	var q ResourceQuantities
	q.Add("mem", values.NewScalar(1024))
	q.Add("cpus", values.NewScalar(1))
	q.Add("cpus", values.NewScalar(2))
	q.Add("disk", values.NewScalar(0)) // no-op
	require.Equal(t, "cpus:3; mem:1024", q.String())

	require.Panics(t, func() {
		q.Add("cpus", values.NewScalar(1).Sub(values.NewScalar(2)))
	})
}

func TestQuantitiesGetAbsent(t *testing.T) {
	q := quantities(t, "cpus:10")
	require.True(t, q.Get("mem").IsZero())
	require.True(t, ResourceQuantities{}.Get("cpus").IsZero())
}

func TestQuantitiesContains(t *testing.T) {
	q := quantities(t, "cpus:5;mem:3")

	require.True(t, q.Contains(quantities(t, "cpus:5")))
	require.True(t, q.Contains(quantities(t, "cpus:5;mem:3")))
	require.True(t, q.Contains(ResourceQuantities{}))
	require.False(t, q.Contains(quantities(t, "mem:4")))
	require.False(t, q.Contains(quantities(t, "cpus:5;disk:1")))
	require.False(t, q.Contains(quantities(t, "cpus:6")))

	// Reflexive.
	require.True(t, q.Contains(q))

	// Transitive.
	big := quantities(t, "cpus:10;disk:100;mem:10")
	small := quantities(t, "mem:1")
	require.True(t, big.Contains(q))
	require.True(t, q.Contains(small))
	require.True(t, big.Contains(small))
}

func TestQuantitiesEqual(t *testing.T) {
	a := quantities(t, "cpus:10;mem:1024")
	require.True(t, a.Equal(quantities(t, "mem:1024;cpus:10")))
	require.False(t, a.Equal(quantities(t, "cpus:10")))
	require.False(t, a.Equal(quantities(t, "cpus:10;mem:1025")))
	require.True(t, ResourceQuantities{}.Equal(ResourceQuantities{}))
}

func TestQuantitiesPlus(t *testing.T) {
	a := quantities(t, "cpus:1;mem:100")
	b := quantities(t, "cpus:2;disk:50")
	c := quantities(t, "gpus:1")

	require.Equal(t, "cpus:3; disk:50; mem:100", a.Plus(b).String())

	// Commutative, associative, and the empty set is the identity.
	require.True(t, a.Plus(b).Equal(b.Plus(a)))
	require.True(t, a.Plus(b).Plus(c).Equal(a.Plus(b.Plus(c))))
	require.True(t, a.Plus(ResourceQuantities{}).Equal(a))

	// Operands are untouched.
	require.Equal(t, "cpus:1; mem:100", a.String())
	require.Equal(t, "cpus:2; disk:50", b.String())
}

func TestQuantitiesMinus(t *testing.T) {
	a := quantities(t, "cpus:5;mem:10")

	require.Equal(t, "cpus:3; mem:10", a.Minus(quantities(t, "cpus:2")).String())

	// An entry driven to zero is removed, not stored.
	require.Equal(t, "mem:10", a.Minus(quantities(t, "cpus:5")).String())

	// Subtraction saturates instead of going negative.
	require.Equal(t, "{}", quantities(t, "cpus:5").Minus(quantities(t, "cpus:10")).String())

	// Names only on the right have no effect.
	require.True(t, a.Minus(quantities(t, "disk:100")).Equal(a))

	require.Equal(t, "{}", a.Minus(a).String())
}

func TestQuantitiesMinusInvertibility(t *testing.T) {
	a := quantities(t, "cpus:5;mem:10")

	// Without clamping, subtraction round-trips.
	b := quantities(t, "cpus:2;mem:3")
	require.True(t, a.Minus(b).Plus(b).Equal(a))

	// With clamping it does not: the clamped amount is lost.
	c := quantities(t, "cpus:10")
	require.False(t, a.Minus(c).Plus(c).Equal(a))
	require.Equal(t, "cpus:10; mem:10", a.Minus(c).Plus(c).String())
}

func TestQuantitiesAddAllInPlace(t *testing.T) {
	a := quantities(t, "cpus:1")
	a.AddAll(quantities(t, "alpha:1;mem:100;zeta:2"))
	require.Equal(t, "alpha:1; cpus:1; mem:100; zeta:2", a.String())

	a.SubtractAll(quantities(t, "alpha:1;cpus:0.5"))
	require.Equal(t, "cpus:0.5; mem:100; zeta:2", a.String())
}

func TestQuantitiesLargeByteAmounts(t *testing.T) {
	// Memory expressed in bytes can exceed the fixed-point range; such values
	// are still non-negative and must parse and compare correctly.
	result := quantities(t, "mem:10000000000000000000")
	require.Equal(t, 1, result.Len())
	require.False(t, result.Get("mem").IsNegative())
	require.Equal(t, "mem:10000000000000000000", result.String())

	require.True(t, result.Contains(quantities(t, "mem:1024")))
	require.False(t, quantities(t, "mem:1024").Contains(result))
}

func TestQuantitiesSubtractAllSelf(t *testing.T) {
	a := quantities(t, "cpus:1;gpus:2;mem:3")
	a.SubtractAll(a)
	require.Equal(t, "{}", a.String())

	// A plain struct copy shares the backing array with the original; it must
	// behave the same as any other operand.
	b := quantities(t, "cpus:1;gpus:2;mem:3")
	c := b
	b.SubtractAll(c)
	require.Equal(t, "{}", b.String())
}

func TestQuantitiesCloneIsIndependent(t *testing.T) {
	a := quantities(t, "cpus:1")
	b := a.Clone()
	b.Add("cpus", values.NewScalar(1))
	require.Equal(t, "cpus:1", a.String())
	require.Equal(t, "cpus:2", b.String())
}
