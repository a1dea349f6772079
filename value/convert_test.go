package value_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/ryuji/value"
)

func TestFromAny_numbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want value.Value
	}{
		{"int", 15, value.Uint(15)},
		{"negative int", int64(-2), value.Float(-2)},
		{"uint64", uint64(7), value.Uint(7)},
		{"float", 0.5, value.Float(0.5)},
		{"json integer", json.Number("42"), value.Uint(42)},
		{"json fraction", json.Number("4.5"), value.Float(4.5)},
		{"json negative", json.Number("-1"), value.Float(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := value.FromAny(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s (%s)", got, got.Kind())
		})
	}
}

func TestFromAny_nested(t *testing.T) {
	t.Parallel()

	got, err := value.FromAny(map[string]any{
		"post": map[any]any{
			"title": "Oak",
			"tags":  []any{"a", true},
		},
	})
	require.NoError(t, err)

	want := value.Map(map[string]value.Value{
		"post": value.Map(map[string]value.Value{
			"title": value.Text("Oak"),
			"tags":  value.List(value.Text("a"), value.Bool(true)),
		}),
	})
	assert.True(t, want.Equal(got))
}

func TestFromAny_unsupported(t *testing.T) {
	t.Parallel()

	_, err := value.FromAny(map[string]any{"a": []any{nil}})
	require.ErrorIs(t, err, value.ErrUnsupportedType)
	assert.Contains(t, err.Error(), `key "a"`)

	_, err = value.FromAny(struct{}{})
	require.ErrorIs(t, err, value.ErrUnsupportedType)
}

func TestVarsFromMap(t *testing.T) {
	t.Parallel()

	vars, err := value.VarsFromMap(map[string]any{"a": 1, "b": "x"})
	require.NoError(t, err)
	assert.Equal(t, "1", vars["a"].String())
	assert.Equal(t, "x", vars["b"].String())

	_, err = value.VarsFromMap(map[string]any{"bad": nil})
	require.ErrorIs(t, err, value.ErrUnsupportedType)
}

func TestInterface_round_trip(t *testing.T) {
	t.Parallel()

	in := value.List(
		value.Uint(1),
		value.Map(map[string]value.Value{"k": value.Text("v")}),
	)

	back, err := value.FromAny(in.Interface())
	require.NoError(t, err)
	assert.True(t, in.Equal(back))
}
