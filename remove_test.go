package quadtree

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove(t *testing.T) {
	tree := New(Rect{0, 0, 100, 100}, nil, WithBucketCapacity(2))

	f := newTestFeature(Rect{10, 10, 20, 20})
	tree.InsertWithBounds(f, f.bounds)
	before := tree.Stats().Items

	require.True(t, tree.Remove(f, f.bounds))
	require.Equal(t, before-1, tree.Stats().Items)
	require.Empty(t, tree.Search(Rect{0, 0, 100, 100}))
	require.NotContains(t, tree.refs, any(f))
}

func TestRemoveAbsentItem(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	tree := New(Rect{0, 0, 100, 100}, nil,
		WithLogger(logger.Sugar.WithServiceName("quadtree.test")))

	require.False(t, tree.Remove(newTestFeature(Rect{1, 1, 2, 2}), Rect{1, 1, 2, 2}))

	// removing an item twice reports absence the second time
	f := newTestFeature(Rect{10, 10, 20, 20})
	tree.InsertWithBounds(f, f.bounds)
	require.True(t, tree.Remove(f, f.bounds))
	require.False(t, tree.Remove(f, f.bounds))
}

// Removal falls back to descending with the supplied bounds when the
// reverse index has no entry, checking every bucket on the path.
func TestRemoveDescentFallback(t *testing.T) {
	tree := New(Rect{0, 0, 100, 100}, nil, WithBucketCapacity(1))

	shallow := newTestFeature(Rect{60, 60, 61, 61})
	deep := newTestFeature(Rect{60, 60, 61, 61})
	tree.InsertWithBounds(shallow, shallow.bounds)
	tree.InsertWithBounds(deep, deep.bounds)

	// drop the index entries to force the descent path
	delete(tree.refs, any(shallow))
	delete(tree.refs, any(deep))

	require.True(t, tree.Remove(shallow, shallow.bounds))
	require.True(t, tree.Remove(deep, deep.bounds))
	require.Equal(t, 0, tree.Stats().Items)
}

func TestRemoveAllLeavesStructureIntact(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree := New(Rect{0, 0, 1000, 1000}, nil, WithBucketCapacity(2))

	var all []*testFeature
	for i := 0; i < 500; i++ {
		x := rng.Float64() * 995
		y := rng.Float64() * 995
		f := newTestFeature(Rect{x, y, x + 5, y + 5})
		tree.InsertWithBounds(f, f.bounds)
		all = append(all, f)
	}
	nodesBefore := tree.Stats().Nodes
	require.Greater(t, nodesBefore, 1)

	for _, f := range all {
		require.True(t, tree.Remove(f, f.bounds))
	}

	// empty nodes are never collapsed; the sparse tree still routes
	// searches correctly
	s := tree.Stats()
	assert.Equal(t, 0, s.Items)
	assert.Equal(t, nodesBefore, s.Nodes)
	assert.Empty(t, tree.Search(Rect{0, 0, 1000, 1000}))

	f := newTestFeature(Rect{500, 500, 501, 501})
	tree.InsertWithBounds(f, f.bounds)
	assert.Equal(t, []any{f}, tree.Search(Rect{499, 499, 502, 502}))
}

func TestRemoveOneOfManyInBucket(t *testing.T) {
	tree := New(Rect{0, 0, 100, 100}, nil)

	a := newTestFeature(Rect{1, 1, 2, 2})
	b := newTestFeature(Rect{2, 2, 3, 3})
	c := newTestFeature(Rect{3, 3, 4, 4})
	for _, f := range []*testFeature{a, b, c} {
		tree.InsertWithBounds(f, f.bounds)
	}

	require.True(t, tree.Remove(b, b.bounds))

	// remaining bucket order is unspecified, membership is not
	assert.ElementsMatch(t, []any{a, c}, tree.Search(Rect{0, 0, 10, 10}))
	assert.True(t, tree.Remove(a, a.bounds))
	assert.True(t, tree.Remove(c, c.bounds))
	assert.Equal(t, 0, tree.Stats().Items)
}
