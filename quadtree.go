package quadtree

import (
	"math"

	"github.com/datatrails/go-datatrails-common/logger"
)

// feature is one bucket entry: the caller's item and its bounds as they
// were supplied or derived at insertion time.
type feature struct {
	item   any
	bounds Rect
}

// node covers one quadrant of its parent (the root covers the global
// bounds). Children are created lazily; a nil subnode slot has never
// received an item. maxFeatures snapshots the tree's bucket capacity at
// node creation time.
type node struct {
	bounds      Rect
	maxFeatures int
	features    []feature
	subnodes    [numQuadrants]*node
}

func (n *node) hasSubnodes() bool {
	for _, sn := range n.subnodes {
		if sn != nil {
			return true
		}
	}
	return false
}

// itemRef locates an item for removal: the node whose bucket holds it and
// the bounds cached when it was inserted.
type itemRef struct {
	owner  *node
	bounds Rect
}

// QuadTree is a 2-D spatial index over axis-aligned rectangles. Not safe
// for concurrent use. The zero value is not usable; construct with New.
type QuadTree struct {
	root           *node
	bucketCapacity int
	maxDepth       int
	forceSubnodes  bool
	getBounds      BoundsFunc

	// refs maps item identity to its storage location, kept consistent
	// with bucket contents at all times.
	refs map[any]itemRef

	// minQuadrantDim is the degenerate-subdivision floor, derived from
	// the global bounds magnitude so behaviour is scale invariant.
	minQuadrantDim float64

	log logger.Logger
}

// New creates a tree indexing the region globalBounds. getBounds may be
// nil when callers always supply explicit bounds via InsertWithBounds.
// Degenerate (zero-area) global bounds are legal: such a tree never
// subdivides and the root bucket grows unbounded.
func New(globalBounds Rect, getBounds BoundsFunc, opts ...Option) *QuadTree {
	options := Options{
		BucketCapacity: DefaultBucketCapacity,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.BucketCapacity < 1 {
		options.BucketCapacity = DefaultBucketCapacity
	}
	if options.MaxDepth < 0 {
		options.MaxDepth = 0
	}

	t := &QuadTree{
		bucketCapacity: options.BucketCapacity,
		maxDepth:       options.MaxDepth,
		getBounds:      getBounds,
		refs:           map[any]itemRef{},
		minQuadrantDim: math.Max(globalBounds.width(), globalBounds.height()) * degenerateRatio,
		log:            options.Log,
	}
	t.root = &node{
		bounds:      globalBounds,
		maxFeatures: t.bucketCapacity,
	}
	return t
}

// Destroy releases the node graph and the reverse index. The caller
// retains ownership of all items. The tree must not be used after
// Destroy; it exists so large trees can be dropped eagerly without
// waiting for the last external reference to go away.
func (t *QuadTree) Destroy() {
	t.root = nil
	t.refs = nil
}

// SetBucketCapacity changes the bucket size threshold applied to nodes
// created from now on. Existing nodes, including the root, keep the
// capacity they were created with and are not rebucketed.
func (t *QuadTree) SetBucketCapacity(n int) error {
	if n < 1 {
		return ErrBadBucketCapacity
	}
	t.bucketCapacity = n
	return nil
}

// ForceUseOfSubNodes makes insertion always attempt delegation to a
// child quadrant, even while the current bucket has room. Once set it
// cannot be unset.
func (t *QuadTree) ForceUseOfSubNodes() {
	t.forceSubnodes = true
}

// SetMaxDepth sets a hard ceiling on node depth, the root being depth 1.
// Values <= 0 mean unlimited: depth is then bounded adaptively by the
// degenerate quadrant size floor.
func (t *QuadTree) SetMaxDepth(n int) {
	if n < 0 {
		n = 0
	}
	t.maxDepth = n
}
