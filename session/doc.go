// Package session provides in-memory session storage for the dispatch
// frontend. A Store maps session identifiers to Session containers with
// get-or-create semantics: the first access to an unknown identifier
// atomically creates and returns an empty session.
//
// The store is the only shared mutable state on the request path, so both
// the store and the sessions it hands out are safe for concurrent use.
package session
