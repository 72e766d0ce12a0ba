package quadtree

import (
	"fmt"
	"io"
	"strings"
)

// debug utilities

// Dump writes a recursive human-readable rendering of the tree to w:
// node extents, bucket sizes and depth. dumpItem, when non-nil, is
// called for each bucket entry; otherwise only the entry bounds are
// printed. Diagnostic output only, the format is not stable.
func (t *QuadTree) Dump(w io.Writer, dumpItem DumpFunc) {
	t.root.dump(w, 0, dumpItem)
}

func (n *node) dump(w io.Writer, level int, dumpItem DumpFunc) {
	indent := strings.Repeat("  ", level)
	fmt.Fprintf(w, "%snode extent=%s features=%d\n",
		indent, rectStringer(n.bounds), len(n.features))
	for _, f := range n.features {
		if dumpItem != nil {
			dumpItem(w, level+1, f.item)
			continue
		}
		fmt.Fprintf(w, "%s  feature bounds=%s\n", indent, rectStringer(f.bounds))
	}
	for _, sn := range n.subnodes {
		if sn != nil {
			sn.dump(w, level+1, dumpItem)
		}
	}
}

func rectStringer(r Rect) string {
	return fmt.Sprintf("(%g %g %g %g)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}
