// Package values implements the textual grammar for resource values and the
// scalar amounts the accounting types are built on.
package values

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Type enumerates the shapes a resource value can take.
type Type int

const (
	// SCALAR is a plain numeric amount.
	SCALAR Type = iota
	// RANGES is a list of closed integer intervals, e.g. port ranges.
	RANGES
	// SET is an unordered list of distinct strings.
	SET
	// TEXT is any value that matches none of the shapes above.
	TEXT
)

func (t Type) String() string {
	switch t {
	case SCALAR:
		return "SCALAR"
	case RANGES:
		return "RANGES"
	case SET:
		return "SET"
	default:
		return "TEXT"
	}
}

// Range is a closed interval of non-negative integers.
type Range struct {
	Begin uint64
	End   uint64
}

// Value is the result of parsing a resource value. Only the field selected by
// Type is meaningful.
type Value struct {
	Type   Type
	Scalar Scalar
	Ranges []Range
	Set    []string
	Text   string
}

// Parse parses the textual form of a resource value: `[b-e, ...]` is RANGES,
// `{item, ...}` is SET, a bare decimal number is SCALAR, and anything else
// falls through to TEXT. Whitespace around the value and around list items is
// trimmed.
func Parse(text string) (Value, error) {
	temp := strings.TrimSpace(text)

	switch {
	case strings.HasPrefix(temp, "["):
		ranges, err := parseRanges(temp)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: RANGES, Ranges: ranges}, nil
	case strings.HasPrefix(temp, "{"):
		set, err := parseSet(temp)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: SET, Set: set}, nil
	default:
		if isDecimal(temp) {
			value, err := strconv.ParseFloat(temp, 64)
			if err == nil {
				return Value{Type: SCALAR, Scalar: NewScalar(value)}, nil
			}
		}
		return Value{Type: TEXT, Text: temp}, nil
	}
}

// isDecimal reports whether the text is a plain decimal number: an optional
// sign, digits, and at most one fractional part. Exponents, hex, and the
// inf/nan spellings strconv would otherwise accept are not part of the
// grammar.
func isDecimal(text string) bool {
	if text == "" {
		return false
	}
	if text[0] == '+' || text[0] == '-' {
		text = text[1:]
	}
	digits, dots := 0, 0
	for _, c := range text {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

func parseRanges(text string) ([]Range, error) {
	if !strings.HasSuffix(text, "]") {
		return nil, errors.Errorf("expecting ']' at the end of '%s'", text)
	}

	inner := strings.TrimSpace(text[1 : len(text)-1])
	if inner == "" {
		return []Range{}, nil
	}

	var ranges []Range
	for _, token := range strings.Split(inner, ",") {
		bounds := strings.SplitN(strings.TrimSpace(token), "-", 2)
		if len(bounds) != 2 {
			return nil, errors.Errorf("expecting a full range in '%s'", token)
		}

		begin, err := strconv.ParseUint(strings.TrimSpace(bounds[0]), 10, 64)
		if err != nil {
			return nil, errors.Errorf("invalid range begin in '%s'", token)
		}
		end, err := strconv.ParseUint(strings.TrimSpace(bounds[1]), 10, 64)
		if err != nil {
			return nil, errors.Errorf("invalid range end in '%s'", token)
		}
		if begin > end {
			return nil, errors.Errorf("descending range in '%s'", token)
		}

		ranges = append(ranges, Range{Begin: begin, End: end})
	}

	return ranges, nil
}

func parseSet(text string) ([]string, error) {
	if !strings.HasSuffix(text, "}") {
		return nil, errors.Errorf("expecting '}' at the end of '%s'", text)
	}

	inner := strings.TrimSpace(text[1 : len(text)-1])
	if inner == "" {
		return []string{}, nil
	}

	var items []string
	for _, token := range strings.Split(inner, ",") {
		items = append(items, strings.TrimSpace(token))
	}

	return items, nil
}
