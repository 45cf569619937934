package ras

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies which of the four scalar types a Value holds.
type Kind int

const (
	Bool Kind = iota
	Int
	Float
	String
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a single coerced field. Exactly one of the payload fields is
// meaningful, selected by Kind; consumers switch on Kind rather than
// treating the payload dynamically.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string
}

// BoolValue returns a Value holding b.
func BoolValue(b bool) Value { return Value{Kind: Bool, Bool: b} }

// IntValue returns a Value holding n.
func IntValue(n int64) Value { return Value{Kind: Int, Int: n} }

// FloatValue returns a Value holding f.
func FloatValue(f float64) Value { return Value{Kind: Float, Float: f} }

// StringValue returns a Value holding s.
func StringValue(s string) Value { return Value{Kind: String, Str: s} }

// Interface returns the payload as a plain Go value.
func (v Value) Interface() any {
	switch v.Kind {
	case Bool:
		return v.Bool
	case Int:
		return v.Int
	case Float:
		return v.Float
	default:
		return v.Str
	}
}

// String renders the payload in its literal form.
func (v Value) String() string {
	switch v.Kind {
	case Bool:
		if v.Bool {
			return "True"
		}
		return "False"
	case Int:
		return strconv.FormatInt(v.Int, 10)
	case Float:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	default:
		return v.Str
	}
}

// MarshalJSON encodes the underlying scalar, not the Value envelope.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// Coerce converts a raw field string into a typed Value. It is total:
// anything that is not a quoted string, a True/False literal, or a number
// comes back as a String, so unquoted identifiers like product1 pass
// through unchanged.
func Coerce(field string) Value {
	// A quoted field is always a string, even if the inner text looks
	// numeric. Exactly one quote is stripped from each end.
	if len(field) > 1 && strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) {
		return StringValue(field[1 : len(field)-1])
	}

	switch field {
	case "True":
		return BoolValue(true)
	case "False":
		return BoolValue(false)
	}

	if strings.Contains(field, ".") {
		if f, err := strconv.ParseFloat(field, 64); err == nil {
			return FloatValue(f)
		}
	} else if n, err := strconv.ParseInt(field, 10, 64); err == nil {
		return IntValue(n)
	}

	return StringValue(field)
}
