package value

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

// ErrUnsupportedType is returned by FromAny for Go values that have no
// Value counterpart.
var ErrUnsupportedType = errors.New("unsupported type")

// FromAny converts a decoded JSON or YAML tree into a Value. Non-negative
// integers become Uint; negative integers and fractions become Float.
func FromAny(in any) (Value, error) {
	const errCtx = "converting value"

	switch typed := in.(type) {
	case Value:
		return typed, nil
	case bool:
		return Bool(typed), nil
	case string:
		return Text(typed), nil
	case float32:
		return Float(float64(typed)), nil
	case float64:
		return Float(typed), nil
	case int:
		return fromInt(int64(typed)), nil
	case int8:
		return fromInt(int64(typed)), nil
	case int16:
		return fromInt(int64(typed)), nil
	case int32:
		return fromInt(int64(typed)), nil
	case int64:
		return fromInt(typed), nil
	case uint:
		return Uint(uint64(typed)), nil
	case uint8:
		return Uint(uint64(typed)), nil
	case uint16:
		return Uint(uint64(typed)), nil
	case uint32:
		return Uint(uint64(typed)), nil
	case uint64:
		return Uint(typed), nil
	case json.Number:
		if u, err := strconv.ParseUint(string(typed), 10, 64); err == nil {
			return Uint(u), nil
		}

		f, err := typed.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%s: number %q: %w", errCtx, typed, err)
		}

		return Float(f), nil
	case []any:
		items := make([]Value, 0, len(typed))

		for idx, item := range typed {
			val, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("%s: index %d: %w", errCtx, idx, err)
			}

			items = append(items, val)
		}

		return Value{kind: KindList, list: items}, nil
	case map[string]any:
		entries := make(map[string]Value, len(typed))

		for key, item := range typed {
			val, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("%s: key %q: %w", errCtx, key, err)
			}

			entries[key] = val
		}

		return Value{kind: KindMap, m: entries}, nil
	case map[any]any:
		entries := make(map[string]Value, len(typed))

		for key, item := range typed {
			name, ok := key.(string)
			if !ok {
				name = fmt.Sprint(key)
			}

			val, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("%s: key %q: %w", errCtx, name, err)
			}

			entries[name] = val
		}

		return Value{kind: KindMap, m: entries}, nil
	}

	return Value{}, fmt.Errorf("%s: %w: %T", errCtx, ErrUnsupportedType, in)
}

// VarsFromMap converts every entry of a decoded top-level mapping.
func VarsFromMap(in map[string]any) (Vars, error) {
	out := make(Vars, len(in))

	for key, item := range in {
		val, err := FromAny(item)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", key, err)
		}

		out[key] = val
	}

	return out, nil
}

func fromInt(i int64) Value {
	if i < 0 {
		return Float(float64(i))
	}

	return Uint(uint64(i))
}

// Interface returns the plain Go representation of v: bool, string,
// float64, uint64, []any or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindText:
		return v.s
	case KindFloat:
		if math.IsInf(v.f, 0) || math.IsNaN(v.f) {
			return v.String()
		}

		return v.f
	case KindUint:
		return v.u
	case KindList:
		out := make([]any, len(v.list))
		for idx, item := range v.list {
			out[idx] = item.Interface()
		}

		return out
	case KindMap:
		out := make(map[string]any, len(v.m))
		for key, item := range v.m {
			out[key] = item.Interface()
		}

		return out
	}

	return nil
}
