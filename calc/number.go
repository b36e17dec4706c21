package calc

import (
	"fmt"
	"math"
	"math/big"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// MaxDigits bounds decimal conversion in both directions so a single query
// string cannot ask for an enormous multiplication or response body.
const MaxDigits = 4300

var integerPattern = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)*$`)

// ParseOperand reads query parameter name as a base-10 integer. Surrounding
// whitespace, a leading sign and single underscores between digits are allowed,
// and digits from any script are read by their decimal value.
func ParseOperand(q url.Values, name string) (*big.Int, error) {
	if !q.Has(name) {
		return nil, fmt.Errorf("%w: %s is missing", ErrInvalidOperand, name)
	}

	raw := q.Get(name)
	text := asciiDigits(strings.TrimSpace(raw))
	if !integerPattern.MatchString(text) {
		return nil, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidOperand, name, raw)
	}

	text = strings.ReplaceAll(text, "_", "")
	if digits := len(strings.TrimLeft(text, "+-")); digits > MaxDigits {
		return nil, fmt.Errorf("%w: %s has %d digits", ErrTooManyDigits, name, digits)
	}

	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidOperand, name, raw)
	}
	return n, nil
}

func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII && unicode.IsDigit(r) {
			return '0' + digitValue(r)
		}
		return r
	}, s)
}

// digitValue relies on every Nd run in Unicode being whole blocks of ten that
// start at zero.
func digitValue(r rune) rune {
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return (r - start) % 10
}

// Result is either an exact integer or a float from true division.
type Result struct {
	Int   *big.Int
	Float float64
}

func intResult(n *big.Int) Result {
	return Result{Int: n}
}

func floatResult(f float64) Result {
	return Result{Float: f}
}

func (r Result) IsFloat() bool {
	return r.Int == nil
}

func (r Result) String() string {
	if r.Int != nil {
		return r.Int.String()
	}
	return FormatFloat(r.Float)
}

// FormatFloat renders f with the fewest digits that round-trip. Integral
// values keep a trailing ".0" and exponent form is used outside 1e-4 <= |f| < 1e16.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func checkDigits(n *big.Int) error {
	// bit length gives a cheap upper bound before paying for the conversion
	if n.BitLen() <= MaxDigits*3 {
		return nil
	}
	if digits := len(new(big.Int).Abs(n).String()); digits > MaxDigits {
		return fmt.Errorf("%w: result has %d digits", ErrTooManyDigits, digits)
	}
	return nil
}
