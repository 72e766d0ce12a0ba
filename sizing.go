package quadtree

// Advised depth clamps. Below the minimum a tree degenerates to a scan;
// above the maximum, node overhead dominates and float midpoints stop
// resolving for realistic extents.
const (
	MinAdvisedMaxDepth = 1
	MaxAdvisedMaxDepth = 12
)

// AdvisedMaxDepth recommends a depth ceiling for a tree expected to hold
// expectedFeatures items with the default bucket capacity: the smallest
// depth with 4^depth * DefaultBucketCapacity >= expectedFeatures,
// clamped to [MinAdvisedMaxDepth, MaxAdvisedMaxDepth]. Purely advisory;
// feed the result to SetMaxDepth.
func AdvisedMaxDepth(expectedFeatures int) int {
	if expectedFeatures <= 0 {
		return MinAdvisedMaxDepth
	}
	depth := MinAdvisedMaxDepth
	// 4^depth leaves, DefaultBucketCapacity items each.
	capacity := uint64(DefaultBucketCapacity) << (2 * uint(depth))
	for depth < MaxAdvisedMaxDepth && capacity < uint64(expectedFeatures) {
		depth++
		capacity <<= 2
	}
	return depth
}
