package quadtree

// Insert adds item to the tree, deriving its bounds through the
// BoundsFunc supplied at construction. Returns ErrNoBoundsFunc when the
// tree was created without one; otherwise insertion cannot fail.
func (t *QuadTree) Insert(item any) error {
	if t.getBounds == nil {
		return ErrNoBoundsFunc
	}
	t.InsertWithBounds(item, t.getBounds(item))
	return nil
}

// InsertWithBounds adds item with explicit bounds, which are cached for
// the lifetime of the entry. Bounds protruding outside the global bounds
// are legal; such items stay in the root bucket. Inserting an item that
// is already present stores it twice and leaves the reverse index
// pointing at the later placement; callers wanting replacement must
// Remove first.
func (t *QuadTree) InsertWithBounds(item any, bounds Rect) {
	n := t.insert(t.root, item, bounds, 1)
	t.refs[item] = itemRef{owner: n, bounds: bounds}
}

// insert descends from n to the bucket that takes the item and returns
// the owning node. depth is the depth of n, the root being 1.
func (t *QuadTree) insert(n *node, item any, bounds Rect, depth int) *node {
	for {
		// A leaf bucket with room keeps the item unless subdivision is
		// forced.
		if !t.forceSubnodes && !n.hasSubnodes() && len(n.features) < n.maxFeatures {
			break
		}

		if t.maxDepth > 0 && depth >= t.maxDepth {
			break
		}

		q, ok := n.bounds.containingQuadrant(bounds)
		if !ok {
			// Straddles a midpoint, or protrudes outside this node. The
			// bucket takes it regardless of capacity.
			break
		}

		child := n.bounds.quadrant(q)
		if child.width() <= t.minQuadrantDim || child.height() <= t.minQuadrantDim {
			// Degenerate quadrant: halt subdivision so clustered and
			// duplicate geometry cannot recurse without bound.
			break
		}

		if n.subnodes[q] == nil {
			n.subnodes[q] = &node{
				bounds:      child,
				maxFeatures: t.bucketCapacity,
			}
		}
		n = n.subnodes[q]
		depth++
	}

	n.features = append(n.features, feature{item: item, bounds: bounds})
	return n
}
