package quadtree

/*

# Quadtree spatial index (in-memory, 2-D)

This package provides a quadtree over axis-aligned rectangles: a tree in
which each internal node covers a rectangular extent and owns up to four
lazily created children, each covering one quadrant of that extent split
at the midpoint. It accelerates bounding-box range queries, insertion
and removal over large dynamic feature collections beyond what a linear
scan can do.

It follows the same "small module, explicit contracts" style as the
other index structures in this collection:

- small, composable operations
- a single owned node graph, no shared ownership
- a burden of knowledge on the caller for hot paths

## Placement model

Every item lives in exactly one node's bucket. An item descends from the
root towards the deepest node whose extent fully contains the item's
bounds; it stops early when its bucket has room, when the item straddles
a midpoint on either axis, when the configured depth ceiling is reached,
or when further subdivision would produce quadrants below the degenerate
size floor. Items whose bounds protrude outside the global bounds are
legal: they simply never descend below the root.

Buckets are capacity-bounded only as a subdivision trigger. An item that
cannot be delegated to any single child is appended to the current
bucket regardless of capacity, so bucket sizes are unbounded for
non-subdividable items. This is the overflow valve that makes clustered
and duplicate geometry safe: ten thousand identical points neither crash
nor recurse forever, they accumulate in one deep bucket.

## Adaptive depth

With no explicit maximum depth configured, subdivision halts when a
child quadrant's width or height would underflow a size floor derived
from the global bounds magnitude (not an absolute constant, so the
behaviour is scale-invariant across coordinate systems). An explicit
ceiling can be set with SetMaxDepth; AdvisedMaxDepth recommends one from
an expected feature count.

## Item identity

Items are opaque to the tree. They are referenced, never copied or
freed, and compared by identity: an item must be usable as a map key,
and pointer-typed items are the intended usage. The reverse index from
item identity to owning node is what makes Remove O(1) on average.

## Concurrency

No operation locks. The tree assumes single-goroutine, synchronous
access; concurrent use requires external synchronisation supplied by the
caller. Every operation is a bounded synchronous traversal: nothing
blocks, suspends, or calls back asynchronously.

*/
