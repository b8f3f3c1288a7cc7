package publisher

import "sort"

// Table maps URL path prefixes to pages. It is built once from a page tree,
// is immutable afterwards, and is therefore safe for concurrent use by any
// number of request handlers without locking.
type Table struct {
	pages map[string]any

	// prefixes holds the table keys sorted longest first (ties broken
	// lexically) so the first prefix match during resolution is the
	// longest one.
	prefixes []string
}

// BuildTable walks the page tree in pre-order and records every node's path
// prefix. The root node maps to the empty prefix, which represents "/".
// Every URLAware page receives its resolved URL via SetURL, with the empty
// root prefix normalized to "/". Traversal never fails; building twice from
// an unmodified tree yields identical mappings.
func BuildTable(root *Node) *Table {
	t := &Table{pages: make(map[string]any)}
	t.walk(root, "")

	t.prefixes = make([]string, 0, len(t.pages))
	for prefix := range t.pages {
		t.prefixes = append(t.prefixes, prefix)
	}
	sort.Slice(t.prefixes, func(i, j int) bool {
		if len(t.prefixes[i]) != len(t.prefixes[j]) {
			return len(t.prefixes[i]) > len(t.prefixes[j])
		}
		return t.prefixes[i] < t.prefixes[j]
	})

	return t
}

func (t *Table) walk(n *Node, prefix string) {
	t.pages[prefix] = n.page

	for _, child := range n.children {
		t.walk(child, prefix+"/"+child.name)
	}

	if aware, ok := n.page.(URLAware); ok {
		url := prefix
		if url == "" {
			url = "/"
		}
		aware.SetURL(url)
	}
}

// Page returns the page mapped to the exact prefix and whether it exists.
func (t *Table) Page(prefix string) (any, bool) {
	page, ok := t.pages[prefix]
	return page, ok
}

// Prefixes returns a copy of the mapped prefixes, longest first.
func (t *Table) Prefixes() []string {
	out := make([]string, len(t.prefixes))
	copy(out, t.prefixes)
	return out
}

// Len returns the number of mapped prefixes.
func (t *Table) Len() int {
	return len(t.pages)
}

// longestPrefix returns the longest table key that is a string prefix of
// path. The empty root prefix matches every path, so the lookup can only
// fail on a table built without a root, which BuildTable never produces.
func (t *Table) longestPrefix(path string) (string, bool) {
	for _, prefix := range t.prefixes {
		if len(prefix) <= len(path) && path[:len(prefix)] == prefix {
			return prefix, true
		}
	}
	return "", false
}
