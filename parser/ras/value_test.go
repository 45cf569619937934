package ras

import (
	"encoding/json"
	"testing"
)

func TestCoerce(t *testing.T) {
	cases := []struct {
		in   string
		want Value
	}{
		{"True", BoolValue(true)},
		{"False", BoolValue(false)},
		{"42", IntValue(42)},
		{"-7", IntValue(-7)},
		{"007", IntValue(7)},
		{"3.14", FloatValue(3.14)},
		{"-0.5", FloatValue(-0.5)},
		{"1.5e3", FloatValue(1500)},
		{"abc", StringValue("abc")},
		{"product1", StringValue("product1")},
		{`"quoted"`, StringValue("quoted")},
		{`"42"`, StringValue("42")},
		{`"Another Item, with a comma"`, StringValue("Another Item, with a comma")},
		// 1e5 has no decimal point, so it is not a float candidate, and
		// it is not a valid integer either.
		{"1e5", StringValue("1e5")},
		// Unquoted booleans are case-sensitive.
		{"true", StringValue("true")},
		{"FALSE", StringValue("FALSE")},
		// A lone quote is too short to be a quoted string.
		{`"`, StringValue(`"`)},
		{`""`, StringValue("")},
		{"", StringValue("")},
		// Malformed numbers take the string fallback.
		{"3.1.4", StringValue("3.1.4")},
		{"9999999999999999999999", StringValue("9999999999999999999999")},
	}

	for _, c := range cases {
		if got := Coerce(c.in); got != c.want {
			t.Errorf("Coerce(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

// Exactly one quote comes off each end of a quoted field.
func TestCoerceStripsSingleQuotePair(t *testing.T) {
	if got := Coerce(`""x""`); got != StringValue(`"x"`) {
		t.Fatalf("Coerce(%q) = %#v", `""x""`, got)
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		Bool:   "bool",
		Int:    "int",
		Float:  "float",
		String: "string",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{BoolValue(true), "True"},
		{BoolValue(false), "False"},
		{IntValue(42), "42"},
		{FloatValue(2.99), "2.99"},
		{StringValue("milk"), "milk"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("%#v.String() = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestValueMarshalJSON(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{BoolValue(true), "true"},
		{IntValue(42), "42"},
		{FloatValue(2.99), "2.99"},
		{StringValue("milk"), `"milk"`},
	}
	for _, c := range cases {
		out, err := json.Marshal(c.v)
		if err != nil {
			t.Fatalf("marshal %#v: %v", c.v, err)
		}
		if string(out) != c.want {
			t.Errorf("marshal %#v = %s, want %s", c.v, out, c.want)
		}
	}
}
