package publisher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type urledPage struct {
	URLed
}

func (p *urledPage) Index(_ Args) (Result, error) {
	return Rendered("url: " + p.URL()), nil
}

func TestBuildTable(t *testing.T) {
	t.Run("maps every node to its path prefix", func(t *testing.T) {
		root := NewTree(&bodyPage{body: "root"})
		sub := root.Child("sub", &bodyPage{body: "sub"})
		sub.Child("another", &bodyPage{body: "another"})

		table := BuildTable(root)
		require.Equal(t, 3, table.Len())

		for _, prefix := range []string{"", "/sub", "/sub/another"} {
			_, ok := table.Page(prefix)
			assert.True(t, ok, "prefix %q should be mapped", prefix)
		}
	})

	t.Run("a lone root yields a single-entry table", func(t *testing.T) {
		table := BuildTable(NewTree(&bodyPage{}))
		assert.Equal(t, 1, table.Len())

		_, ok := table.Page("")
		assert.True(t, ok)
	})

	t.Run("prefixes are ordered longest first", func(t *testing.T) {
		table := testTable()

		prefixes := table.Prefixes()
		for i := 1; i < len(prefixes); i++ {
			assert.GreaterOrEqual(t, len(prefixes[i-1]), len(prefixes[i]))
		}
		assert.Equal(t, "", prefixes[len(prefixes)-1])
	})

	t.Run("building twice yields identical mappings", func(t *testing.T) {
		root := NewTree(&bodyPage{body: "root"})
		sub := root.Child("sub", &bodyPage{body: "sub"})
		sub.Child("another", &bodyPage{body: "another"})

		first := BuildTable(root)
		second := BuildTable(root)

		require.Equal(t, first.Len(), second.Len())
		assert.Equal(t, first.Prefixes(), second.Prefixes())
		for _, prefix := range first.Prefixes() {
			a, _ := first.Page(prefix)
			b, _ := second.Page(prefix)
			assert.Same(t, a, b, "prefix %q", prefix)
		}
	})
}

func TestBuildTableSetURL(t *testing.T) {
	t.Run("every URL-aware page learns its resolved URL", func(t *testing.T) {
		rootPage := &urledPage{}
		subPage := &urledPage{}
		anotherPage := &urledPage{}

		root := NewTree(rootPage)
		root.Child("sub", subPage).Child("another", anotherPage)
		BuildTable(root)

		assert.Equal(t, "/", rootPage.URL())
		assert.Equal(t, "/sub", subPage.URL())
		assert.Equal(t, "/sub/another", anotherPage.URL())
	})

	t.Run("pages without the interface are left alone", func(t *testing.T) {
		assert.NotPanics(t, func() {
			BuildTable(NewTree(&bodyPage{}))
		})
	})
}

func TestNode(t *testing.T) {
	t.Run("root has no name", func(t *testing.T) {
		root := NewTree(&bodyPage{})
		assert.Equal(t, "", root.Name())
	})

	t.Run("Child returns the child for chaining", func(t *testing.T) {
		root := NewTree(&bodyPage{})
		child := root.Child("sub", &bodyPage{body: "sub"})
		assert.Equal(t, "sub", child.Name())
		assert.Equal(t, "sub", child.Page().(*bodyPage).body)
	})

	t.Run("non-page root panics", func(t *testing.T) {
		assert.Panics(t, func() { NewTree(struct{}{}) })
		assert.Panics(t, func() { NewTree(nil) })
	})

	t.Run("non-page child panics", func(t *testing.T) {
		root := NewTree(&bodyPage{})
		assert.Panics(t, func() { root.Child("data", 42) })
	})

	t.Run("empty child name panics", func(t *testing.T) {
		root := NewTree(&bodyPage{})
		assert.Panics(t, func() { root.Child("", &bodyPage{}) })
	})

	t.Run("slash in child name panics", func(t *testing.T) {
		root := NewTree(&bodyPage{})
		assert.Panics(t, func() { root.Child("a/b", &bodyPage{}) })
	})

	t.Run("duplicate child name panics", func(t *testing.T) {
		root := NewTree(&bodyPage{})
		root.Child("sub", &bodyPage{})
		assert.Panics(t, func() { root.Child("sub", &bodyPage{}) })
	})
}

func TestIsPage(t *testing.T) {
	t.Run("index-only values are pages", func(t *testing.T) {
		assert.True(t, IsPage(&bodyPage{}))
	})

	t.Run("action-only values are pages", func(t *testing.T) {
		assert.True(t, IsPage(&actionPage{}))
	})

	t.Run("plain values are not pages", func(t *testing.T) {
		assert.False(t, IsPage(42))
		assert.False(t, IsPage("page"))
		assert.False(t, IsPage(struct{}{}))
		assert.False(t, IsPage(nil))
	})
}
