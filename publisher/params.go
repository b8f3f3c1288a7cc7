package publisher

import "net/url"

// Value holds the value of a single query or form parameter. A key that
// appears once yields a scalar; a repeated key yields an ordered list. The
// distinction is preserved so handlers see a plain string for single-valued
// parameters.
type Value struct {
	values []string
}

// NewValue returns a Value holding the given strings: a scalar when exactly
// one is given, a list otherwise.
func NewValue(values ...string) Value {
	return Value{values: values}
}

// IsList reports whether the value holds more than one string.
func (v Value) IsList() bool {
	return len(v.values) > 1
}

// String returns the scalar value, or the first element of a list. It
// returns "" for an empty Value.
func (v Value) String() string {
	if len(v.values) == 0 {
		return ""
	}
	return v.values[0]
}

// List returns all values in order.
func (v Value) List() []string {
	return v.values
}

// Values maps parameter names to their flattened values.
type Values map[string]Value

// Get returns the named value and whether it is present.
func (vs Values) Get(name string) (Value, bool) {
	v, ok := vs[name]
	return v, ok
}

// ParseQuery parses an application/x-www-form-urlencoded string
// (RFC 3986 Section 3.4 query component syntax) into flattened Values.
// Malformed pairs are dropped; the parseable remainder is kept, so the
// function never fails.
func ParseQuery(query string) Values {
	parsed, _ := url.ParseQuery(query)

	values := make(Values, len(parsed))
	for name, vals := range parsed {
		values[name] = NewValue(vals...)
	}
	return values
}

// Args carries the bound arguments for one entry point invocation:
// Positional holds one raw path segment per required parameter, in declared
// order; Named holds the optional parameters present in the request source.
type Args struct {
	Positional []string
	Named      Values
}

// Pos returns the i-th positional argument, or "" when i is out of range.
func (a Args) Pos(i int) string {
	if i < 0 || i >= len(a.Positional) {
		return ""
	}
	return a.Positional[i]
}

// Get returns the named optional argument and whether the request supplied it.
func (a Args) Get(name string) (Value, bool) {
	return a.Named.Get(name)
}

// Opt returns the named optional argument as a scalar string, or fallback
// when the request did not supply it.
func (a Args) Opt(name, fallback string) string {
	if v, ok := a.Named[name]; ok {
		return v.String()
	}
	return fallback
}
