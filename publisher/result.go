package publisher

import "net/http"

type resultKind int

const (
	kindCompleted resultKind = iota
	kindRendered
	kindRedirect
)

// Result is the value a page entry point returns to the dispatch frontend.
// It is a tagged variant: a rendered body, a redirect, or a bare completion.
// The zero Result is a completion.
type Result struct {
	kind     resultKind
	body     string
	status   int
	location string
}

// Rendered returns a Result carrying a response body. For GET requests the
// frontend writes it with status 200 and Content-type text/html.
func Rendered(body string) Result {
	return Result{kind: kindRendered, body: body}
}

// Redirect returns a Result instructing the frontend to redirect the client.
// An empty location means "the URL of the current request", query string
// included. The status should be a 3xx code such as http.StatusSeeOther.
func Redirect(status int, location string) Result {
	return Result{kind: kindRedirect, status: status, location: location}
}

// SeeOther returns a 303 See Other redirect (RFC 9110 Section 15.4.4).
// An empty location defaults to the current request URL.
func SeeOther(location string) Result {
	return Redirect(http.StatusSeeOther, location)
}

// MovedPermanently returns a 301 Moved Permanently redirect
// (RFC 9110 Section 15.4.2).
func MovedPermanently(location string) Result {
	return Redirect(http.StatusMovedPermanently, location)
}

// Completed returns a Result with nothing to say. An action returning it
// triggers the frontend's default redirect back to the request URL.
func Completed() Result {
	return Result{}
}

// IsRendered reports whether the result carries a response body.
func (r Result) IsRendered() bool {
	return r.kind == kindRendered
}

// IsRedirect reports whether the result is a redirect.
func (r Result) IsRedirect() bool {
	return r.kind == kindRedirect
}

// IsCompleted reports whether the result is a bare completion.
func (r Result) IsCompleted() bool {
	return r.kind == kindCompleted
}

// Body returns the rendered response body, or "" for other variants.
func (r Result) Body() string {
	return r.body
}

// Status returns the redirect status code, or 0 for other variants.
func (r Result) Status() int {
	return r.status
}

// Location returns the redirect target. Empty means the current request URL.
func (r Result) Location() string {
	return r.location
}
