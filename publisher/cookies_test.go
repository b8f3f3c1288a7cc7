package publisher

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookies(t *testing.T) {
	t.Run("parses a Cookie header", func(t *testing.T) {
		jar := ParseCookies("SESSIONID=abc; theme=dark")

		id, ok := jar.Get("SESSIONID")
		require.True(t, ok)
		assert.Equal(t, "abc", id)

		theme, ok := jar.Get("theme")
		require.True(t, ok)
		assert.Equal(t, "dark", theme)
	})

	t.Run("empty header yields an empty jar", func(t *testing.T) {
		jar := ParseCookies("")
		_, ok := jar.Get("SESSIONID")
		assert.False(t, ok)
		assert.Empty(t, jar.Pending())
	})

	t.Run("client cookies are not pending", func(t *testing.T) {
		jar := ParseCookies("a=1")
		assert.Empty(t, jar.Pending())
	})

	t.Run("set cookies are pending and readable", func(t *testing.T) {
		jar := ParseCookies("")
		jar.SetValue("SESSIONID", "new-id")

		v, ok := jar.Get("SESSIONID")
		require.True(t, ok)
		assert.Equal(t, "new-id", v)

		pending := jar.Pending()
		require.Len(t, pending, 1)
		assert.Equal(t, "SESSIONID", pending[0].Name)
		assert.Equal(t, "new-id", pending[0].Value)
	})

	t.Run("set replaces the client value for reads", func(t *testing.T) {
		jar := ParseCookies("theme=dark")
		jar.Set(&http.Cookie{Name: "theme", Value: "light"})

		v, _ := jar.Get("theme")
		assert.Equal(t, "light", v)
	})

	t.Run("pending keeps insertion order", func(t *testing.T) {
		jar := ParseCookies("")
		jar.SetValue("a", "1")
		jar.SetValue("b", "2")

		pending := jar.Pending()
		require.Len(t, pending, 2)
		assert.Equal(t, "a", pending[0].Name)
		assert.Equal(t, "b", pending[1].Name)
	})
}

func TestAwarenessHelpers(t *testing.T) {
	t.Run("URLed stores the URL", func(t *testing.T) {
		var p URLed
		p.SetURL("/sub")
		assert.Equal(t, "/sub", p.URL())
	})

	t.Run("Requested stores the request", func(t *testing.T) {
		var p Requested
		req := &Request{URL: "/"}
		p.SetRequest(req)
		assert.Same(t, req, p.Request())
	})

	t.Run("Cookied stores the jar", func(t *testing.T) {
		var p Cookied
		jar := ParseCookies("a=1")
		p.SetCookies(jar)
		assert.Same(t, jar, p.Cookies())
	})
}
