package publisher

import "github.com/confeitaria/confeitaria/session"

// Index is implemented by pages that render GET requests.
type Index interface {
	Index(args Args) (Result, error)
}

// Action is implemented by pages that handle POST requests.
type Action interface {
	Action(args Args) (Result, error)
}

// IndexDescriptor declares the parameters of a page's Index method.
// Pages without this interface declare no parameters.
type IndexDescriptor interface {
	IndexSignature() Signature
}

// ActionDescriptor declares the parameters of a page's Action method.
// Pages without this interface declare no parameters.
type ActionDescriptor interface {
	ActionSignature() Signature
}

// URLAware is implemented by pages that want to know the URL they are
// published under. SetURL is called once, at table construction, with the
// page's resolved path ("/" for the root page).
type URLAware interface {
	SetURL(url string)
}

// RequestAware is implemented by pages that want the resolved request.
// SetRequest is called once per request, before the entry point is invoked.
type RequestAware interface {
	SetRequest(req *Request)
}

// CookieAware is implemented by pages that want the request's cookie jar.
// Cookies added to the jar during handling are sent back with the response.
type CookieAware interface {
	SetCookies(cookies *Cookies)
}

// SessionAware is implemented by pages that want the session associated with
// the requesting client.
type SessionAware interface {
	SetSession(s *session.Session)
}

// IsPage reports whether v qualifies as a page, that is, whether it
// implements Index, Action or both.
func IsPage(v any) bool {
	if v == nil {
		return false
	}

	if _, ok := v.(Index); ok {
		return true
	}

	_, ok := v.(Action)
	return ok
}
