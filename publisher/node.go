package publisher

import (
	"fmt"
	"strings"
)

// Node is one position in the page tree. Each node publishes a page and
// carries a name-keyed ordered list of children; the edge names become URL
// path segments. Nodes are created exclusively through NewTree and Child,
// which forbids cycles by construction.
type Node struct {
	name     string
	page     any
	children []*Node
}

// NewTree returns the root node of a new page tree publishing the given
// page. It panics when page does not satisfy IsPage.
func NewTree(page any) *Node {
	if !IsPage(page) {
		panic("publisher: root page must implement Index or Action")
	}
	return &Node{page: page}
}

// Child appends a child node publishing the given page under the given path
// segment and returns it, so deeper children can be chained off the result.
//
// It panics when the name is empty or contains a slash, when the name is
// already taken on this node, or when page does not satisfy IsPage. These
// are programming errors in tree assembly, caught at startup.
func (n *Node) Child(name string, page any) *Node {
	if name == "" {
		panic("publisher: child name must not be empty")
	}
	if strings.Contains(name, "/") {
		panic(fmt.Sprintf("publisher: child name %q must not contain a slash", name))
	}
	if !IsPage(page) {
		panic(fmt.Sprintf("publisher: child %q must implement Index or Action", name))
	}
	for _, c := range n.children {
		if c.name == name {
			panic(fmt.Sprintf("publisher: duplicate child name %q", name))
		}
	}

	child := &Node{name: name, page: page}
	n.children = append(n.children, child)
	return child
}

// Page returns the page published at this node.
func (n *Node) Page() any {
	return n.page
}

// Name returns the path segment under which this node is published. It is
// empty for the root node.
func (n *Node) Name() string {
	return n.name
}
