package types

// Type represents the built-in primitive types in the mcc language
type Type int

const (
	Undefined Type = iota

	// Unsigned integers
	U8
	U16
	U32
	U64
	USize

	// Signed integers
	I8
	I16
	I32
	I64

	// Compound primitives
	Pointer
	Array
	String
)

// names is the forward table, indexed by Type. Lookup builds the
// reverse table from it so the two can never drift apart.
var names = [...]string{
	Undefined: "undefined",
	U8:        "u8",
	U16:       "u16",
	U32:       "u32",
	U64:       "u64",
	USize:     "usize",
	I8:        "i8",
	I16:       "i16",
	I32:       "i32",
	I64:       "i64",
	Pointer:   "pointer",
	Array:     "array",
	String:    "string",
}

var byName = func() map[string]Type {
	m := make(map[string]Type, len(names))
	for t, name := range names {
		if Type(t) == Undefined {
			continue
		}
		m[name] = Type(t)
	}
	return m
}()

// Lookup resolves a surface spelling like "u32" to its Type.
// The second result is false for names that are not types.
func Lookup(name string) (Type, bool) {
	t, ok := byName[name]
	return t, ok
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(names) {
		return "undefined"
	}
	return names[t]
}

// IsUnsigned reports whether t is an unsigned integer type
func (t Type) IsUnsigned() bool {
	switch t {
	case U8, U16, U32, U64, USize:
		return true
	default:
		return false
	}
}

// IsSigned reports whether t is a signed integer type
func (t Type) IsSigned() bool {
	switch t {
	case I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

// IsInteger reports whether t is any integer type
func (t Type) IsInteger() bool {
	return t.IsUnsigned() || t.IsSigned()
}

// Names returns the surface spellings of all nameable types, in
// declaration order. Undefined has no spelling and is excluded.
func Names() []string {
	out := make([]string, 0, len(names)-1)
	for t, name := range names {
		if Type(t) == Undefined {
			continue
		}
		out = append(out, name)
	}
	return out
}
