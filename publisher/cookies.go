package publisher

import "net/http"

// Cookies is the cookie container handed to CookieAware pages. It exposes
// the cookies sent by the client and records cookies added during handling,
// which the dispatch frontend then writes to the response as Set-Cookie
// header fields (RFC 6265 Section 4.1).
type Cookies struct {
	in      map[string]*http.Cookie
	pending []*http.Cookie
}

// NewCookies returns a container holding the given client cookies.
func NewCookies(cookies ...*http.Cookie) *Cookies {
	c := &Cookies{in: make(map[string]*http.Cookie, len(cookies))}
	for _, ck := range cookies {
		c.in[ck.Name] = ck
	}
	return c
}

// ParseCookies parses a Cookie request header value (RFC 6265 Section 4.2)
// into a container. Malformed input yields an empty container.
func ParseCookies(header string) *Cookies {
	parsed, _ := http.ParseCookie(header)
	return NewCookies(parsed...)
}

// Get returns the value of the named cookie and whether it is present,
// considering cookies added during handling as well as client cookies.
func (c *Cookies) Get(name string) (string, bool) {
	if ck, ok := c.in[name]; ok {
		return ck.Value, true
	}
	return "", false
}

// Set records a cookie to be sent with the response. The cookie is also
// visible to subsequent Get calls within the same request.
func (c *Cookies) Set(cookie *http.Cookie) {
	c.in[cookie.Name] = cookie
	c.pending = append(c.pending, cookie)
}

// SetValue records a bare name=value cookie to be sent with the response.
func (c *Cookies) SetValue(name, value string) {
	c.Set(&http.Cookie{Name: name, Value: value})
}

// Pending returns the cookies added during handling, in insertion order.
func (c *Cookies) Pending() []*http.Cookie {
	return c.pending
}
