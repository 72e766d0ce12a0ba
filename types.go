package quadtree

import (
	"errors"
	"io"
)

const (
	// DefaultBucketCapacity is the bucket size threshold for newly created
	// nodes when none is configured.
	DefaultBucketCapacity = 8

	// degenerateRatio scales the global bounds magnitude down to the
	// minimum quadrant dimension. Subdivision halts once a child's width
	// or height would not exceed max(globalW, globalH)*degenerateRatio.
	// Roughly 30 levels of halving for well-formed global bounds.
	degenerateRatio = 1e-9
)

var (
	ErrBadBucketCapacity = errors.New("quadtree: bucket capacity must be >= 1")
	ErrNoBoundsFunc      = errors.New("quadtree: tree was created without a bounds function")
)

// BoundsFunc derives the bounds of an item on demand. A tree created with
// a BoundsFunc supports Insert; explicit bounds via InsertWithBounds are
// always available. The function must return consistent bounds for the
// same item across calls; the tree cannot detect inconsistency.
type BoundsFunc func(item any) Rect

// ForeachFunc visits one stored item. Returning false aborts the
// traversal.
type ForeachFunc func(item any) bool

// DumpFunc renders one stored item during Dump. indentLevel is the node
// depth of the owning bucket, for callers that want aligned output.
type DumpFunc func(w io.Writer, indentLevel int, item any)

// Stats aggregates tree shape diagnostics. Computed by full traversal,
// not maintained incrementally.
type Stats struct {
	// Items is the total number of stored items.
	Items int
	// Nodes is the total number of allocated nodes, including the root.
	Nodes int
	// MaxDepth is the deepest allocated node, root depth being 1.
	MaxDepth int
	// MaxBucketSize is the largest bucket observed on any node.
	MaxBucketSize int
}
