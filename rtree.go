package shapeindex

import (
	"github.com/pingcap/errors"
)

// DefaultMaxEntries is the node capacity used by New when the caller has no
// particular preference.
const DefaultMaxEntries = 8

// Item is the payload stored against a shape in the tree.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// entry is an entry under a node. In a leaf node it carries a shape and its
// item; in an intermediate node it carries the handle of a child node. The
// bounding box is cached in both cases: for a leaf entry it equals the
// shape's MBR, for an intermediate entry it covers the child's entries.
type entry struct {
	bbox  BBox
	shape Shape
	item  Item
	child int
}

// node is a node in an R-Tree. Nodes can either be leaf nodes holding entries
// for terminal items, or intermediate nodes holding entries for more nodes.
// The parent handle is -1 only for the root.
type node struct {
	isLeaf  bool
	parent  int
	entries []entry
}

// RTree is an in-memory R-Tree over 2D shapes. Nodes live in a slab and are
// addressed by their slab index; handles released by deletion are recycled
// through a free list.
type RTree struct {
	maxEntries int
	minEntries int
	root       int
	nodes      []node
	free       []int
	size       int
}

// New creates an empty RTree. Nodes hold at most maxEntries entries, which
// must be at least 2; non-root nodes hold at least maxEntries/2.
func New(maxEntries int) (*RTree, error) {
	if maxEntries < 2 {
		return nil, errors.Errorf("max entries must be at least 2, got %d", maxEntries)
	}
	t := &RTree{
		maxEntries: maxEntries,
		minEntries: maxEntries / 2,
	}
	t.root = t.allocNode(true, -1)
	return t, nil
}

// Len gives the number of items held by the tree.
func (t *RTree) Len() int {
	return t.size
}

// allocNode takes a handle off the free list, or grows the slab when the
// free list is empty.
func (t *RTree) allocNode(isLeaf bool, parent int) int {
	if n := len(t.free); n > 0 {
		i := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[i] = node{isLeaf: isLeaf, parent: parent}
		return i
	}
	t.nodes = append(t.nodes, node{isLeaf: isLeaf, parent: parent})
	return len(t.nodes) - 1
}

// freeNode releases a handle back to the free list. The slot's entries are
// dropped so the slab doesn't pin subtree memory.
func (t *RTree) freeNode(i int) {
	t.nodes[i] = node{parent: -1}
	t.free = append(t.free, i)
}

// calculateBound calculates the smallest bounding box that fits a node.
func (t *RTree) calculateBound(n int) BBox {
	bb := t.nodes[n].entries[0].bbox
	for _, e := range t.nodes[n].entries[1:] {
		bb = combine(bb, e.bbox)
	}
	return bb
}

// Search looks for any items in the tree whose stored shape overlaps the
// given region. Intermediate nodes are pruned by their cached bounding
// boxes; at the leaves the stored shape's own Intersects predicate decides.
// Results come back in depth-first order over the current tree shape.
func (t *RTree) Search(region Shape) []Item {
	var found []Item
	regionBB := region.MBR()
	var recurse func(int)
	recurse = func(n int) {
		nd := &t.nodes[n]
		for i := range nd.entries {
			e := &nd.entries[i]
			if nd.isLeaf {
				if e.shape.Intersects(region) {
					found = append(found, e.item)
				}
			} else if e.bbox.Intersects(regionBB) {
				recurse(e.child)
			}
		}
	}
	recurse(t.root)
	return found
}

// SearchByID looks for the item with the given id. The second return value
// reports whether it was found. If duplicate ids were inserted, the first
// one in depth-first order wins.
func (t *RTree) SearchByID(id int) (Item, bool) {
	n, i, ok := t.findLeafEntry(id)
	if !ok {
		return Item{}, false
	}
	return t.nodes[n].entries[i].item, true
}

// findLeafEntry locates the leaf entry holding the given id, returning the
// leaf's handle and the entry's position within it. Id lookups cannot be
// pruned spatially, so this walks the whole tree in the worst case.
func (t *RTree) findLeafEntry(id int) (int, int, bool) {
	var recurse func(int) (int, int, bool)
	recurse = func(n int) (int, int, bool) {
		nd := &t.nodes[n]
		for i := range nd.entries {
			if nd.isLeaf {
				if nd.entries[i].item.ID == id {
					return n, i, true
				}
			} else if ln, li, ok := recurse(nd.entries[i].child); ok {
				return ln, li, ok
			}
		}
		return 0, 0, false
	}
	return recurse(t.root)
}
