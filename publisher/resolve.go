package publisher

import (
	"net/http"
	"net/url"
	"strings"
)

// Request is the product of resolving one incoming HTTP request against a
// Table: the target page, the bound arguments for its entry point, and the
// raw material they were derived from. It lives for a single request.
type Request struct {
	// Page is the page owning the matched prefix.
	Page any

	// Method is the resolved HTTP method; an empty input method resolves
	// to GET.
	Method string

	// PathArgs holds the raw path segments left over after stripping the
	// matched prefix.
	PathArgs []string

	// Query holds every query string parameter, flattened.
	Query Values

	// Form holds every form body parameter, flattened. Empty for GET.
	Form Values

	// Args holds the positional and named arguments to pass to the entry
	// point: PathArgs verbatim, plus the declared optional parameters
	// present in the applicable source.
	Args Args

	// URL is the request path plus "?" and the query string when one was
	// given.
	URL string
}

// Resolve finds the page owning rawURL and binds the request's values to the
// entry point selected by method. body is the form-encoded POST body, or ""
// when there is none.
//
// Resolution fails with ErrNotFound when no prefix matches or when the
// number of leftover path segments differs from the entry point's required
// parameter count, and with ErrMethodNotAllowed when the matched page lacks
// the entry point the method demands. Both are returned wrapped with the
// offending URL; match them with errors.Is.
func (t *Table) Resolve(rawURL, method, body string) (*Request, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, notFound(rawURL)
	}

	path := parsed.Path
	requestURL := path
	if parsed.RawQuery != "" {
		requestURL += "?" + parsed.RawQuery
	}

	prefix, ok := t.longestPrefix(path)
	if !ok {
		return nil, notFound(requestURL)
	}
	page := t.pages[prefix]

	pathArgs := splitSegments(strings.TrimPrefix(path, prefix))
	query := ParseQuery(parsed.RawQuery)
	form := ParseQuery(body)

	var source Values
	switch method {
	case http.MethodPost:
		if _, ok := page.(Action); !ok {
			return nil, methodNotAllowed(requestURL, method)
		}
		source = form
	case http.MethodGet, "":
		if _, ok := page.(Index); !ok {
			return nil, methodNotAllowed(requestURL, http.MethodGet)
		}
		method = http.MethodGet
		source = query
	default:
		return nil, methodNotAllowed(requestURL, method)
	}

	sig := signatureOf(page, method)

	// Positional URL segments identify a specific resource; any count
	// mismatch means no such resource exists, so bad arity and a missing
	// page are both not-found.
	if len(pathArgs) != sig.NumRequired() {
		return nil, notFound(requestURL)
	}

	named := make(Values)
	for _, name := range sig.OptionalNames() {
		if v, ok := source[name]; ok {
			named[name] = v
		}
	}

	return &Request{
		Page:     page,
		Method:   method,
		PathArgs: pathArgs,
		Query:    query,
		Form:     form,
		Args:     Args{Positional: pathArgs, Named: named},
		URL:      requestURL,
	}, nil
}

// splitSegments splits a leftover path on "/", discarding empty components.
func splitSegments(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
