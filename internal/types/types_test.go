package types

import (
	"testing"
)

func TestLookupKnownTypes(t *testing.T) {
	cases := []struct {
		name string
		want Type
	}{
		{"u8", U8},
		{"u16", U16},
		{"u32", U32},
		{"u64", U64},
		{"usize", USize},
		{"i8", I8},
		{"i16", I16},
		{"i32", I32},
		{"i64", I64},
		{"pointer", Pointer},
		{"array", Array},
		{"string", String},
	}

	for _, c := range cases {
		got, ok := Lookup(c.name)
		if !ok {
			t.Errorf("Lookup(%q): expected a type, got none", c.name)
			continue
		}
		if got != c.want {
			t.Errorf("Lookup(%q): expected %s, got %s", c.name, c.want, got)
		}
	}
}

func TestLookupUnknownNames(t *testing.T) {
	for _, name := range []string{"", "u128", "int", "undefined", "U32", "f64"} {
		if got, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q): expected no type, got %s", name, got)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, name := range Names() {
		typ, ok := Lookup(name)
		if !ok {
			t.Fatalf("Names() returned %q but Lookup rejects it", name)
		}
		if typ.String() != name {
			t.Errorf("expected %q, got %q", name, typ.String())
		}
	}
}

func TestStringOutOfRange(t *testing.T) {
	if got := Type(-1).String(); got != "undefined" {
		t.Errorf("expected undefined for negative kind, got %q", got)
	}
	if got := Type(1000).String(); got != "undefined" {
		t.Errorf("expected undefined for out of range kind, got %q", got)
	}
}

func TestClassification(t *testing.T) {
	unsigned := []Type{U8, U16, U32, U64, USize}
	signed := []Type{I8, I16, I32, I64}
	other := []Type{Undefined, Pointer, Array, String}

	for _, typ := range unsigned {
		if !typ.IsUnsigned() || typ.IsSigned() {
			t.Errorf("%s: expected unsigned, not signed", typ)
		}
		if !typ.IsInteger() {
			t.Errorf("%s: expected integer", typ)
		}
	}
	for _, typ := range signed {
		if !typ.IsSigned() || typ.IsUnsigned() {
			t.Errorf("%s: expected signed, not unsigned", typ)
		}
		if !typ.IsInteger() {
			t.Errorf("%s: expected integer", typ)
		}
	}
	for _, typ := range other {
		if typ.IsInteger() {
			t.Errorf("%s: expected non-integer", typ)
		}
	}
}
