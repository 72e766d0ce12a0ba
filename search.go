package quadtree

// Search returns all items whose bounds intersect query, in discovery
// order. The test is inclusive, so items touching the query only at an
// edge or corner are returned. Each item is stored exactly once, so the
// result can never contain duplicates. The returned slice is owned by
// the caller; an empty result is nil.
func (t *QuadTree) Search(query Rect) []any {
	var out []any
	t.root.search(query, &out)
	return out
}

func (n *node) search(query Rect, out *[]any) {
	for _, f := range n.features {
		if f.bounds.Intersects(query) {
			*out = append(*out, f.item)
		}
	}
	for _, sn := range n.subnodes {
		if sn != nil && sn.bounds.Intersects(query) {
			sn.search(query, out)
		}
	}
}

// HasMatch reports whether any stored item's bounds intersect query. It
// short-circuits on the first match and allocates nothing.
func (t *QuadTree) HasMatch(query Rect) bool {
	return t.root.hasMatch(query)
}

func (n *node) hasMatch(query Rect) bool {
	for _, f := range n.features {
		if f.bounds.Intersects(query) {
			return true
		}
	}
	for _, sn := range n.subnodes {
		if sn != nil && sn.bounds.Intersects(query) && sn.hasMatch(query) {
			return true
		}
	}
	return false
}
