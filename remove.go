package quadtree

// Remove deletes item from the tree, reporting whether it was present.
// The reverse index locates the owning node directly; bounds is only
// consulted as a descent fallback when the index has no entry for the
// item. Removal never collapses empty child nodes: the tree may become
// sparse but stays structurally valid for future searches.
func (t *QuadTree) Remove(item any, bounds Rect) bool {
	if ref, ok := t.refs[item]; ok {
		ref.owner.removeFeature(item)
		delete(t.refs, item)
		return true
	}

	// Fallback: retrace the insertion descent for bounds, checking each
	// bucket on the path. Items legally stop at any ancestor of their
	// deepest containing node, so every node on the path is a candidate.
	for n := t.root; n != nil; {
		if n.removeFeature(item) {
			delete(t.refs, item)
			return true
		}
		q, ok := n.bounds.containingQuadrant(bounds)
		if !ok {
			break
		}
		n = n.subnodes[q]
	}

	if t.log != nil {
		t.log.Debugf("quadtree: remove: item not found in (%g %g %g %g)",
			bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY)
	}
	return false
}

// removeFeature deletes item from n's bucket if present. Bucket order is
// not preserved: the last entry is swapped into the hole.
func (n *node) removeFeature(item any) bool {
	for i := range n.features {
		if n.features[i].item == item {
			last := len(n.features) - 1
			n.features[i] = n.features[last]
			n.features[last] = feature{}
			n.features = n.features[:last]
			return true
		}
	}
	return false
}
