package numfmt

import (
	"math"
	"strconv"
)

// Value is a semantic field value: a finite number, or null when nothing
// has been entered. Null is distinct from zero.
type Value struct {
	n     float64
	valid bool
}

// Null returns the empty value.
func Null() Value { return Value{} }

// Number returns a numeric value. NaN and infinities become Null.
func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{n: f, valid: true}
}

// Float64 returns the number and whether the value is non-null.
func (v Value) Float64() (float64, bool) { return v.n, v.valid }

func (v Value) IsNull() bool { return !v.valid }

// Equal compares numerically. Two nulls are equal.
func (v Value) Equal(o Value) bool {
	if v.valid != o.valid {
		return false
	}
	return !v.valid || v.n == o.n
}

func (v Value) String() string {
	if !v.valid {
		return "null"
	}
	return strconv.FormatFloat(v.n, 'f', -1, 64)
}

// Parse derives the semantic value of a raw buffer. The empty string, a lone
// decimal point, text that is not a raw buffer for the mode, and anything
// strconv rejects parse to Null.
func Parse(raw string, allowDecimal bool) Value {
	if raw == "" || raw == string(DecimalPoint) {
		return Null()
	}
	if Sanitize(raw, allowDecimal) != raw {
		return Null()
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Null()
	}
	return Number(f)
}

// FormatValue renders v as raw buffer text for the given mode. Digit mode
// truncates toward zero. The result is sanitized, so a sign is dropped.
func FormatValue(v Value, allowDecimal bool) string {
	f, ok := v.Float64()
	if !ok {
		return ""
	}
	if !allowDecimal {
		f = math.Trunc(f)
	}
	return Sanitize(strconv.FormatFloat(f, 'f', -1, 64), allowDecimal)
}

// Reconcile decides the raw buffer after the bound value changed from
// outside. A value numerically equal to the current buffer keeps the buffer,
// so an echo of the user's own edit never rewrites text still being typed
// ("007", "12.").
func Reconcile(external Value, currentRaw string, allowDecimal bool) string {
	if external.IsNull() {
		return ""
	}
	if Parse(currentRaw, allowDecimal).Equal(external) {
		return currentRaw
	}
	return FormatValue(external, allowDecimal)
}
