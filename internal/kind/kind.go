package kind

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is a primitive numeric kind.
type Kind uint8

// Kinds in canonical order. Invalid is the zero value.
const (
	Invalid Kind = iota
	Uint8
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
)

// Class groups kinds by representation.
type Class uint8

const (
	ClassInvalid Class = iota
	Unsigned
	Signed
	Float
)

func (c Class) String() string {
	switch c {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	case Float:
		return "float"
	default:
		return "invalid"
	}
}

// IsInteger reports whether c is an integer class.
func (c Class) IsInteger() bool {
	return c == Unsigned || c == Signed
}

type info struct {
	name  string
	class Class
	bits  int
}

var infos = [...]info{
	Invalid: {"invalid", ClassInvalid, 0},
	Uint8:   {"uint8", Unsigned, 8},
	Uint16:  {"uint16", Unsigned, 16},
	Uint32:  {"uint32", Unsigned, 32},
	Uint64:  {"uint64", Unsigned, 64},
	Int8:    {"int8", Signed, 8},
	Int16:   {"int16", Signed, 16},
	Int32:   {"int32", Signed, 32},
	Int64:   {"int64", Signed, 64},
	Float32: {"float32", Float, 32},
	Float64: {"float64", Float, 64},
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(infos))
	for _, k := range All() {
		m[k.String()] = k
	}
	return m
}()

// All returns every valid kind in canonical order.
func All() []Kind {
	return []Kind{Uint8, Uint16, Uint32, Uint64, Int8, Int16, Int32, Int64, Float32, Float64}
}

// Valid reports whether k is one of the ten numeric kinds.
func (k Kind) Valid() bool {
	return k > Invalid && int(k) < len(infos)
}

// String returns the Go type name of k, e.g. "uint8".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return infos[k].name
}

// Ident returns the exported identifier stem for k, e.g. "Uint8".
func (k Kind) Ident() string {
	return cases.Title(language.Und).String(k.String())
}

// Class returns the representation class of k.
func (k Kind) Class() Class {
	if !k.Valid() {
		return ClassInvalid
	}
	return infos[k].class
}

// Bits returns the bit width of k, or 0 for an invalid kind.
func (k Kind) Bits() int {
	if !k.Valid() {
		return 0
	}
	return infos[k].bits
}

// MarshalText encodes k as its type name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a type name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Parse returns the kind named by a Go numeric type name.
func Parse(name string) (Kind, error) {
	k, ok := byName[name]
	if !ok {
		return Invalid, fmt.Errorf("unknown numeric kind %q", name)
	}
	return k, nil
}
