package publisher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	t.Run("single value parses to a scalar", func(t *testing.T) {
		values := ParseQuery("a=1")
		require.Len(t, values, 1)

		v, ok := values.Get("a")
		require.True(t, ok)
		assert.False(t, v.IsList())
		assert.Equal(t, "1", v.String())
	})

	t.Run("repeated key parses to an ordered list", func(t *testing.T) {
		values := ParseQuery("a=1&a=2")
		require.Len(t, values, 1)

		v, ok := values.Get("a")
		require.True(t, ok)
		assert.True(t, v.IsList())
		assert.Equal(t, []string{"1", "2"}, v.List())
	})

	t.Run("distinct keys stay scalars", func(t *testing.T) {
		values := ParseQuery("a=1&b=2")
		require.Len(t, values, 2)

		a, ok := values.Get("a")
		require.True(t, ok)
		assert.Equal(t, "1", a.String())

		b, ok := values.Get("b")
		require.True(t, ok)
		assert.Equal(t, "2", b.String())
	})

	t.Run("empty input yields no values", func(t *testing.T) {
		assert.Empty(t, ParseQuery(""))
	})

	t.Run("percent-encoded values are decoded", func(t *testing.T) {
		values := ParseQuery("greeting=Hi%20there")

		v, ok := values.Get("greeting")
		require.True(t, ok)
		assert.Equal(t, "Hi there", v.String())
	})

	t.Run("malformed pairs are dropped, the rest kept", func(t *testing.T) {
		values := ParseQuery("a=1&bad=%zz")

		v, ok := values.Get("a")
		require.True(t, ok)
		assert.Equal(t, "1", v.String())

		_, ok = values.Get("bad")
		assert.False(t, ok)
	})
}

func TestValue(t *testing.T) {
	t.Run("empty value stringifies to empty", func(t *testing.T) {
		assert.Equal(t, "", NewValue().String())
	})

	t.Run("list value stringifies to its first element", func(t *testing.T) {
		assert.Equal(t, "1", NewValue("1", "2").String())
	})
}

func TestArgs(t *testing.T) {
	args := Args{
		Positional: []string{"world"},
		Named:      Values{"greeting": NewValue("Hi")},
	}

	t.Run("Pos returns the segment in declared order", func(t *testing.T) {
		assert.Equal(t, "world", args.Pos(0))
	})

	t.Run("Pos out of range returns empty", func(t *testing.T) {
		assert.Equal(t, "", args.Pos(1))
		assert.Equal(t, "", args.Pos(-1))
	})

	t.Run("Opt returns the supplied value", func(t *testing.T) {
		assert.Equal(t, "Hi", args.Opt("greeting", "Hello"))
	})

	t.Run("Opt falls back when the value is absent", func(t *testing.T) {
		assert.Equal(t, "Hello", args.Opt("missing", "Hello"))
	})

	t.Run("Get reports presence", func(t *testing.T) {
		_, ok := args.Get("greeting")
		assert.True(t, ok)

		_, ok = args.Get("missing")
		assert.False(t, ok)
	})
}
