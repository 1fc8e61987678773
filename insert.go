package shapeindex

// Insert adds a new item with the given shape to the RTree.
func (t *RTree) Insert(item Item, shape Shape) {
	bb := shape.MBR()
	leaf := t.chooseLeafNode(bb)
	t.nodes[leaf].entries = append(t.nodes[leaf].entries, entry{
		bbox:  bb,
		shape: shape,
		item:  item,
		child: -1,
	})
	t.size++

	// Widen the cached bounding boxes along the path back to the root so
	// that they keep covering the new shape.
	current := leaf
	for current != t.root {
		parent := t.nodes[current].parent
		for i := range t.nodes[parent].entries {
			e := &t.nodes[parent].entries[i]
			if e.child == current {
				e.bbox = combine(e.bbox, bb)
				break
			}
		}
		current = parent
	}

	if len(t.nodes[leaf].entries) <= t.maxEntries {
		return
	}

	newNode := t.splitNode(leaf)
	root1, root2 := t.adjustTree(leaf, newNode)

	if root2 != -1 {
		t.joinRoots(root1, root2)
	}
}

// chooseLeafNode descends from the root to the leaf whose bounding box needs
// the least enlargement to accommodate the new entry. Ties go to the entry
// with the smaller current area, then to the earlier entry.
func (t *RTree) chooseLeafNode(bb BBox) int {
	n := t.root
	for {
		if t.nodes[n].isLeaf {
			return n
		}
		entries := t.nodes[n].entries
		bestEntry := 0
		bestDelta := enlargement(entries[0].bbox, bb)
		for i := 1; i < len(entries); i++ {
			delta := enlargement(entries[i].bbox, bb)
			if delta < bestDelta {
				bestDelta = delta
				bestEntry = i
			} else if delta == bestDelta && area(entries[i].bbox) < area(entries[bestEntry].bbox) {
				// Area is used as a tie break if the enlargements are the same.
				bestEntry = i
			}
		}
		n = entries[bestEntry].child
	}
}

// splitNode splits an overflowing node into two by cutting its entry
// sequence in half: the first ceil(k/2) entries stay in place, the rest move
// to a newly allocated node. The return value is the new node's handle.
func (t *RTree) splitNode(n int) int {
	entries := t.nodes[n].entries
	half := (len(entries) + 1) / 2

	moved := make([]entry, len(entries)-half)
	copy(moved, entries[half:])
	t.nodes[n].entries = entries[:half:half]

	nn := t.allocNode(t.nodes[n].isLeaf, t.nodes[n].parent)
	t.nodes[nn].entries = moved
	if !t.nodes[nn].isLeaf {
		for _, e := range moved {
			t.nodes[e.child].parent = nn
		}
	}
	return nn
}

// adjustTree walks from a freshly split node back to the root, refreshing
// cached bounding boxes and installing entries for new split halves. It
// returns the root together with the handle of a second split half at root
// level, or -1 if the split was absorbed on the way up.
func (t *RTree) adjustTree(n, nn int) (int, int) {
	for {
		if n == t.root {
			return n, nn
		}
		parent := t.nodes[n].parent
		for i := range t.nodes[parent].entries {
			e := &t.nodes[parent].entries[i]
			if e.child == n {
				e.bbox = t.calculateBound(n)
				break
			}
		}

		pp := -1
		if nn != -1 {
			t.nodes[parent].entries = append(t.nodes[parent].entries, entry{
				bbox:  t.calculateBound(nn),
				child: nn,
			})
			t.nodes[nn].parent = parent
			if len(t.nodes[parent].entries) > t.maxEntries {
				pp = t.splitNode(parent)
			}
		}

		n, nn = parent, pp
	}
}

// joinRoots grows the tree by one level, making the two root-level halves of
// a root split the children of a new root. This is the only way the tree
// gains height.
func (t *RTree) joinRoots(r1, r2 int) {
	newRoot := t.allocNode(false, -1)
	t.nodes[newRoot].entries = []entry{
		{bbox: t.calculateBound(r1), child: r1},
		{bbox: t.calculateBound(r2), child: r2},
	}
	t.nodes[r1].parent = newRoot
	t.nodes[r2].parent = newRoot
	t.root = newRoot
}
