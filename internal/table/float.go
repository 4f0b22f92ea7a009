// internal/table/float.go
package table

import (
	"math"
	"strconv"
	"strings"
)

// Float is a numeric value that may be null.
type Float struct {
	V     float64
	Valid bool
}

// Num returns a non-null Float.
func Num(v float64) Float { return Float{V: v, Valid: true} }

// Null is the null Float.
var Null Float

// ParseFloat coerces s to a number. Anything that does not parse, including
// "NaN", becomes null. Surrounding whitespace is ignored.
func ParseFloat(s string) Float {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return Null
	}
	return Num(v)
}

// Coerce is ParseFloat for a cell that may itself be null.
func Coerce(s string, ok bool) Float {
	if !ok {
		return Null
	}
	return ParseFloat(s)
}

// String formats the value in shortest round-trip form; null formats as "".
func (f Float) String() string {
	if !f.Valid {
		return ""
	}
	return FormatFloat(f.V)
}

// Ptr returns nil for null.
func (f Float) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.V
	return &v
}

// Add treats null as zero on both sides, so summing never yields null.
func (f Float) Add(g Float) Float {
	var a, b float64
	if f.Valid {
		a = f.V
	}
	if g.Valid {
		b = g.V
	}
	return Num(a + b)
}

// Max ignores nulls; it is null only when both sides are.
func (f Float) Max(g Float) Float {
	switch {
	case !f.Valid:
		return g
	case !g.Valid:
		return f
	case g.V > f.V:
		return g
	}
	return f
}

// FormatFloat writes v in shortest round-trip form ("300", "0.25"). Infinities
// are written "inf" and "-inf", NaN as "nan".
func FormatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
