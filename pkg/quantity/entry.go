// Package quantity implements the ordered resource-accounting types the
// scheduler and admission layers reason with: ResourceQuantities, a sum of
// named scalar amounts, and ResourceLimits, a set of per-name caps. Both keep
// their entries strictly sorted by name, which makes iteration order
// deterministic and lets the merge and dominance algorithms walk two sets in
// a single pass.
package quantity

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/zagrev/mesos/pkg/values"
)

// Entry is a single named amount inside a ResourceQuantities or
// ResourceLimits. Names are compared byte-wise; surrounding whitespace is
// trimmed at parse time but interior whitespace is significant.
type Entry struct {
	Name   string
	Scalar values.Scalar
}

type pair struct {
	name   string
	value  string
	scalar values.Scalar
}

// tokenize splits text on the delimiter and drops empty pieces, matching how
// the simple-string resource format has always been tokenized ("a::b" is a
// valid pair, "a;;b" two tokens).
func tokenize(text, delim string) []string {
	var tokens []string
	for _, piece := range strings.Split(text, delim) {
		if piece != "" {
			tokens = append(tokens, piece)
		}
	}
	return tokens
}

// parsePairs parses `name:value(;name:value)*` text into name/scalar pairs,
// rejecting malformed tokens, non-scalar values, and negative values. Zero
// values are kept; the callers apply their own zero and duplicate policies.
// The noun ("quantity" or "limit") only flavors error messages.
func parsePairs(text, noun string) ([]pair, error) {
	var pairs []pair

	for _, token := range tokenize(text, ";") {
		pieces := tokenize(token, ":")
		if len(pieces) != 2 {
			return nil, errors.Errorf("failed to parse '%s': missing or extra ':'", token)
		}

		value, err := values.Parse(pieces[1])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse '%s' to %s", pieces[1], noun)
		}

		if value.Type != values.SCALAR {
			return nil, errors.Errorf(
				"failed to parse '%s' to %s: only scalar values are allowed", pieces[1], noun)
		}

		if value.Scalar.IsNegative() {
			return nil, errors.Errorf(
				"failed to parse '%s' to %s: negative values are not allowed", pieces[1], noun)
		}

		pairs = append(pairs, pair{
			name:   strings.TrimSpace(pieces[0]),
			value:  pieces[1],
			scalar: value.Scalar,
		})
	}

	return pairs, nil
}
