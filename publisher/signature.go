package publisher

import "net/http"

// Signature describes the declared parameters of a page entry point: an
// ordered list of required names, bound positionally from leftover URL path
// segments, followed by an ordered list of optional names, bound by name from
// the query string or form body. Optional parameters always form the trailing
// run of the parameter list; the builder enforces this by construction.
type Signature struct {
	required []string
	optional []string
}

// Required returns a Signature declaring the given required parameter names,
// in order. Call with no arguments to start a signature that has only
// optional parameters.
func Required(names ...string) Signature {
	return Signature{required: names}
}

// Optional returns a copy of the signature with the given optional parameter
// names appended, in order.
func (s Signature) Optional(names ...string) Signature {
	s.optional = append(s.optional[:len(s.optional):len(s.optional)], names...)
	return s
}

// RequiredNames returns the declared required parameter names in order.
func (s Signature) RequiredNames() []string {
	return s.required
}

// OptionalNames returns the declared optional parameter names in order.
func (s Signature) OptionalNames() []string {
	return s.optional
}

// NumRequired returns the number of required parameters. A request resolves
// against this signature only when it carries exactly this many leftover
// path segments.
func (s Signature) NumRequired() int {
	return len(s.required)
}

// signatureOf extracts the declared signature for the given entry point,
// falling back to the zero signature when the page carries no descriptor.
func signatureOf(page any, method string) Signature {
	switch method {
	case http.MethodPost:
		if d, ok := page.(ActionDescriptor); ok {
			return d.ActionSignature()
		}
	default:
		if d, ok := page.(IndexDescriptor); ok {
			return d.IndexSignature()
		}
	}
	return Signature{}
}
