// Package resolve maps an opaque interaction target back to the catalog
// record it belongs to. The walk is generic over any target tree: the UI
// supplies nodes, tests supply fixtures, and the package never touches
// rendering details.
package resolve

import "github.com/ewinters/stacks/internal/catalog"

// Target is one node in the interaction tree. A node either carries the
// preview id of the book it was rendered for, or defers to its parent.
// Parent returns nil at the root.
type Target interface {
	PreviewID() (string, bool)
	Parent() Target
}

// Resolve walks t outward until an ancestor carries a preview id, then
// looks the id up in the catalog. A miss, either because no ancestor
// carries an id or the id is unknown, is a normal outcome, not an error:
// callers treat it as a silent no-op.
func Resolve(t Target, cat *catalog.Catalog) (catalog.Book, bool) {
	for n := t; n != nil; n = n.Parent() {
		id, ok := n.PreviewID()
		if !ok {
			continue
		}
		return cat.Book(id)
	}
	return catalog.Book{}, false
}

// Node is a ready-made Target for hit-maps and tests.
type Node struct {
	ID string // preview id; empty means this node carries none
	Up *Node
}

// PreviewID implements Target.
func (n *Node) PreviewID() (string, bool) {
	return n.ID, n.ID != ""
}

// Parent implements Target.
func (n *Node) Parent() Target {
	if n.Up == nil {
		return nil
	}
	return n.Up
}
