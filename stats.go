package quadtree

// Foreach calls fn once per stored item, in unspecified order. Traversal
// stops as soon as fn returns false. fn runs synchronously on the
// caller's goroutine and must not mutate the tree.
func (t *QuadTree) Foreach(fn ForeachFunc) {
	t.root.foreach(fn)
}

func (n *node) foreach(fn ForeachFunc) bool {
	for _, f := range n.features {
		if !fn(f.item) {
			return false
		}
	}
	for _, sn := range n.subnodes {
		if sn != nil && !sn.foreach(fn) {
			return false
		}
	}
	return true
}

// Stats computes shape diagnostics by a full traversal. This is a debug
// path; nothing is maintained incrementally for it.
func (t *QuadTree) Stats() Stats {
	var s Stats
	t.root.stats(&s, 1)
	return s
}

func (n *node) stats(s *Stats, depth int) {
	s.Nodes++
	s.Items += len(n.features)
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	if len(n.features) > s.MaxBucketSize {
		s.MaxBucketSize = len(n.features)
	}
	for _, sn := range n.subnodes {
		if sn != nil {
			sn.stats(s, depth+1)
		}
	}
}
