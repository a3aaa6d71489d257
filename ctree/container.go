package ctree

import "fmt"

// maxNestingDepth bounds the total depth of a construction tree. Inserts
// that would push any node past this limit fail with ErrTooDeep, so deeply
// self-nested conditional blocks produce a defined error instead of
// exhausting the stack during later traversal.
const maxNestingDepth = 255

// Append inserts child at the end of n's child sequence.
func (n *Node) Append(child *Node) error {
	return n.insert(child, n.last, nil)
}

// Prepend inserts child at the start of n's child sequence.
func (n *Node) Prepend(child *Node) error {
	return n.insert(child, nil, n.first)
}

// InsertBefore inserts child immediately before ref. A nil ref means
// "before nothing" and is equivalent to Append.
func (n *Node) InsertBefore(child, ref *Node) error {
	if ref == nil {
		return n.Append(child)
	}
	if err := n.checkRef(ref); err != nil {
		return err
	}
	return n.insert(child, ref.prevSib, ref)
}

// InsertAfter inserts child immediately after ref. A nil ref means "after
// nothing" and is equivalent to Prepend.
func (n *Node) InsertAfter(child, ref *Node) error {
	if ref == nil {
		return n.Prepend(child)
	}
	if err := n.checkRef(ref); err != nil {
		return err
	}
	return n.insert(child, ref, ref.nextSib)
}

// Remove detaches child from n. The removed node keeps its subtree and
// becomes the root of its own fragment, with nil parent and siblings,
// re-attachable elsewhere in the same document.
func (n *Node) Remove(child *Node) error {
	if child == nil {
		return fmt.Errorf("%w: cannot remove nil child", ErrNotParented)
	}
	if child.parent == nil {
		return fmt.Errorf("%w: cannot remove %s", ErrNotParented, child.kind)
	}
	if child.parent != n {
		return fmt.Errorf("%w: %s is a child of %s, not %s",
			ErrWrongParent, child.kind, child.parent.kind, n.kind)
	}
	wasAttached := n.attached()
	n.unlink(child)
	if wasAttached {
		n.doc.markDirty()
	}
	return nil
}

// RemoveAllChildren detaches every direct child of n. It is a no-op on a
// node with no children, and calling it twice is safe. Each removed child
// is fully unlinked: nil parent and nil siblings.
func (n *Node) RemoveAllChildren() {
	if n.first == nil {
		return
	}
	wasAttached := n.attached()
	for n.first != nil {
		n.unlink(n.first)
	}
	if wasAttached {
		n.doc.markDirty()
	}
}

// checkRef validates a positional reference argument.
func (n *Node) checkRef(ref *Node) error {
	if ref.doc != n.doc {
		return fmt.Errorf("%w: reference %s", ErrCrossDocument, ref.kind)
	}
	if ref.parent != n {
		return fmt.Errorf("%w: reference %s is not a child of %s",
			ErrWrongParent, ref.kind, n.kind)
	}
	return nil
}

// insert links child between prev and next under n. All preconditions are
// checked before the first link is touched, so a failed insert leaves the
// tree exactly as it was.
func (n *Node) insert(child, prev, next *Node) error {
	if err := n.checkInsert(child, next); err != nil {
		return err
	}
	child.parent = n
	child.prevSib = prev
	child.nextSib = next
	if prev != nil {
		prev.nextSib = child
	} else {
		n.first = child
	}
	if next != nil {
		next.prevSib = child
	} else {
		n.last = child
	}
	n.children++
	n.markDirty()
	return nil
}

// checkInsert enforces every structural invariant for inserting child
// under n with next as the prospective following sibling.
func (n *Node) checkInsert(child, next *Node) error {
	if child == nil {
		return fmt.Errorf("%w: cannot insert nil child", ErrSchema)
	}
	if child.doc != n.doc {
		return fmt.Errorf("%w: cannot insert %s", ErrCrossDocument, child.kind)
	}
	if child.parent != nil {
		return fmt.Errorf("%w: %s must be removed before re-inserting",
			ErrParented, child.kind)
	}
	if child == n {
		return fmt.Errorf("%w: cannot insert %s into itself", ErrCycle, child.kind)
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return fmt.Errorf("%w: %s is an ancestor of %s",
				ErrCycle, child.kind, n.kind)
		}
	}
	if err := checkEdge(n, child); err != nil {
		return err
	}
	if n.kind == ChooseKind {
		if err := checkChooseOrder(n, child.kind, next); err != nil {
			return err
		}
	}
	if err := checkItemOperators(n, child); err != nil {
		return err
	}
	if n.depth()+child.height() > maxNestingDepth {
		return fmt.Errorf("%w: tree depth would exceed %d",
			ErrTooDeep, maxNestingDepth)
	}
	return nil
}

// unlink severs child from n, zeroing its parent and sibling links.
func (n *Node) unlink(child *Node) {
	if child.prevSib != nil {
		child.prevSib.nextSib = child.nextSib
	} else {
		n.first = child.nextSib
	}
	if child.nextSib != nil {
		child.nextSib.prevSib = child.prevSib
	} else {
		n.last = child.prevSib
	}
	child.parent = nil
	child.prevSib = nil
	child.nextSib = nil
	n.children--
}
