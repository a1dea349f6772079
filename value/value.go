package value

import (
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

// Value kinds.
const (
	KindBool Kind = iota
	KindText
	KindFloat
	KindUint
	KindList
	KindMap
)

var kindNames = [...]string{
	KindBool:  "bool",
	KindText:  "text",
	KindFloat: "float",
	KindUint:  "uint",
	KindList:  "list",
	KindMap:   "map",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is an immutable tagged union. The zero Value is Bool(false).
type Value struct {
	kind Kind
	b    bool
	s    string
	f    float64
	u    uint64
	list []Value
	m    map[string]Value
}

// Vars maps variable names to values for a render call.
type Vars map[string]Value

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Uint returns an unsigned integer value.
func Uint(u uint64) Value { return Value{kind: KindUint, u: u} }

// List copies items into a new list value.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)

	return Value{kind: KindList, list: cp}
}

// Map copies entries into a new map value.
func Map(entries map[string]Value) Value {
	cp := make(map[string]Value, len(entries))
	for key, val := range entries {
		cp[key] = val
	}

	return Value{kind: KindMap, m: cp}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean held by v and whether v is a KindBool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsText returns the text held by v and whether v is a KindText.
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

// AsFloat returns the float held by v and whether v is a KindFloat.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsUint returns the integer held by v and whether v is a KindUint.
func (v Value) AsUint() (uint64, bool) { return v.u, v.kind == KindUint }

// AsList returns the backing slice. Callers must not modify it.
func (v Value) AsList() ([]Value, bool) { return v.list, v.kind == KindList }

// AsMap returns the backing map. Callers must not modify it.
func (v Value) AsMap() (map[string]Value, bool) { return v.m, v.kind == KindMap }

// Equal reports structural equality. Values of different kinds are never
// equal, so Uint(1) != Float(1).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindText:
		return v.s == other.s
	case KindFloat:
		return v.f == other.f
	case KindUint:
		return v.u == other.u
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}

		for idx := range v.list {
			if !v.list[idx].Equal(other.list[idx]) {
				return false
			}
		}

		return true
	case KindMap:
		if len(v.m) != len(other.m) {
			return false
		}

		for key, val := range v.m {
			ov, ok := other.m[key]
			if !ok || !val.Equal(ov) {
				return false
			}
		}

		return true
	}

	return false
}

// Truthy reports whether v passes a one-argument if directive. Text is
// truthy when non-empty.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindText:
		return v.s != ""
	case KindFloat:
		return v.f != 0
	case KindUint:
		return v.u != 0
	case KindList:
		return len(v.list) > 0
	case KindMap:
		return len(v.m) > 0
	}

	return false
}

// String returns the text substituted for v by a variable directive.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindText:
		return v.s
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindList:
		var sb strings.Builder

		sb.WriteByte('[')

		for idx, item := range v.list {
			if idx > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(strconv.Quote(item.String()))
		}

		sb.WriteByte(']')

		return sb.String()
	case KindMap:
		return mapText(v)
	}

	return ""
}
