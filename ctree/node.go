package ctree

import (
	"sort"
)

// Node is a single element in a construction tree. Nodes are created
// detached by the factory methods on [Document] and become part of the tree
// through the container operations Append, Prepend, InsertBefore and
// InsertAfter.
//
// A Node owns its children; parent and sibling links are back-references
// only. A detached node (and a freshly created one) has nil parent and nil
// siblings.
type Node struct {
	kind Kind
	doc  *Document

	parent   *Node
	prevSib  *Node
	nextSib  *Node
	first    *Node
	last     *Node
	children int

	attrs map[string]string
	text  string
}

// Kind returns the element kind of n.
func (n *Node) Kind() Kind { return n.kind }

// Document returns the Document that owns n. A node is owned by the
// document that created it for its whole lifetime, attached or not.
func (n *Node) Document() *Document { return n.doc }

// Parent returns the parent of n, or nil if n is detached or the root.
func (n *Node) Parent() *Node { return n.parent }

// FirstChild returns the first child of n, or nil.
func (n *Node) FirstChild() *Node { return n.first }

// LastChild returns the last child of n, or nil.
func (n *Node) LastChild() *Node { return n.last }

// PrevSibling returns the previous sibling of n, or nil.
func (n *Node) PrevSibling() *Node { return n.prevSib }

// NextSibling returns the next sibling of n, or nil.
func (n *Node) NextSibling() *Node { return n.nextSib }

// ChildCount returns the number of direct children of n.
func (n *Node) ChildCount() int { return n.children }

// Children returns the direct children of n in document order. The result
// is a snapshot; mutating the tree does not affect it.
func (n *Node) Children() []*Node {
	res := make([]*Node, 0, n.children)
	for c := n.first; c != nil; c = c.nextSib {
		res = append(res, c)
	}
	return res
}

// Descendants returns every node under n (not including n) in depth-first
// document order.
func (n *Node) Descendants() []*Node {
	var res []*Node
	stack := make([]*Node, 0, n.children)
	for c := n.last; c != nil; c = c.prevSib {
		stack = append(stack, c)
	}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res = append(res, c)
		for cc := c.last; cc != nil; cc = cc.prevSib {
			stack = append(stack, cc)
		}
	}
	return res
}

// Contains reports whether d is a descendant of n.
func (n *Node) Contains(d *Node) bool {
	if d == nil {
		return false
	}
	for p := d.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Root returns the topmost ancestor of n, which is n itself when detached.
func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// attached reports whether n is reachable from its document's root.
func (n *Node) attached() bool {
	return n.Root() == &n.doc.Node
}

// markDirty records a mutation. Only mutations reachable from the document
// root dirty the document; edits inside detached fragments do not.
func (n *Node) markDirty() {
	if n.attached() {
		n.doc.markDirty()
	}
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(name string) string { return n.attrs[name] }

// HasAttr reports whether the named attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// AttrNames returns the attribute names of n, sorted. Attribute storage is
// unordered; sorting keeps iteration reproducible.
func (n *Node) AttrNames() []string {
	res := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// SetAttr sets the named attribute. Attribute mutation is legal on any
// node, attached or detached, and is never schema checked.
func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = map[string]string{}
	}
	n.attrs[name] = value
	n.markDirty()
}

// RemoveAttr removes the named attribute if present.
func (n *Node) RemoveAttr(name string) {
	if !n.HasAttr(name) {
		return
	}
	delete(n.attrs, name)
	n.markDirty()
}

// Text returns the text value of n (property values, metadata values).
func (n *Node) Text() string { return n.text }

// SetText sets the text value of n.
func (n *Node) SetText(v string) {
	n.text = v
	n.markDirty()
}

// Name returns the "Name" attribute (targets, tasks, properties,
// metadata, parameters).
func (n *Node) Name() string { return n.Attr("Name") }

// SetName sets the "Name" attribute.
func (n *Node) SetName(v string) { n.SetAttr("Name", v) }

// ItemType returns the "Type" attribute of an Item or ItemDefinition.
func (n *Node) ItemType() string { return n.Attr("Type") }

// Include returns the "Include" attribute of an Item or Import.
func (n *Node) Include() string { return n.Attr("Include") }

// Condition returns the "Condition" attribute. A node with no condition is
// unconditioned.
func (n *Node) Condition() string { return n.Attr("Condition") }

// SetCondition sets the "Condition" attribute.
func (n *Node) SetCondition(v string) { n.SetAttr("Condition", v) }

// depth returns the number of nodes on the path from the root of n's
// fragment down to n, inclusive.
func (n *Node) depth() int {
	d := 0
	for p := n; p != nil; p = p.parent {
		d++
	}
	return d
}

// height returns the height of the subtree rooted at n: 1 for a leaf. The
// walk uses an explicit stack so pathological trees cannot exhaust the call
// stack before the depth guard fires.
func (n *Node) height() int {
	type frame struct {
		node *Node
		d    int
	}
	max := 1
	stack := []frame{{n, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.d > max {
			max = f.d
		}
		for c := f.node.first; c != nil; c = c.nextSib {
			stack = append(stack, frame{c, f.d + 1})
		}
	}
	return max
}
