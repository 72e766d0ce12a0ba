package quadtree

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

// Options collects the tunables accepted by New. All of them have
// post-construction mutators as well; the options exist so a fully
// configured tree can be built in one call.
type Options struct {
	BucketCapacity int
	MaxDepth       int
	Log            logger.Logger
}

// Option is a generic option type. Options type assert to their target
// record and are ignored if the assertion fails.
type Option func(any)

// WithBucketCapacity sets the bucket size threshold used for nodes
// created by the new tree. Values < 1 are ignored and the default is
// kept.
func WithBucketCapacity(n int) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.BucketCapacity = n
		}
	}
}

// WithMaxDepth sets the node depth ceiling, as for SetMaxDepth.
func WithMaxDepth(n int) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.MaxDepth = n
		}
	}
}

// WithLogger provides a logger for the diagnostic paths. The tree logs
// nothing on the hot paths; without a logger it logs nothing at all.
func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}
