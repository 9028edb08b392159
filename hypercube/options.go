// SPDX-License-Identifier: MIT

// Package hypercube: functional options for Multiply.
//
// Design goals:
//   - No global state: every call resolves its own options.
//   - Every rank of a group must pass the same options; they steer which
//     collective calls are made, so diverging options hang the group.
//   - Option constructors panic on nonsensical values (programmer error).
package hypercube

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultQuadrantCombine enables the closed-form combine for groups of
	// four. false ⇒ groups of four split like any other size.
	DefaultQuadrantCombine = true

	// DefaultVerbose disables per-level tracing.
	DefaultVerbose = false

	// DefaultTagA and DefaultTagB label the A and B exchanges.
	DefaultTagA = 0
	DefaultTagB = 1
)

const (
	panicTagsInvalid = "hypercube: WithTags: tags must be non-negative and distinct"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	quadrant   bool
	verbose    bool
	tagA, tagB int
}

func defaultOptions() options {
	return options{
		quadrant: DefaultQuadrantCombine,
		verbose:  DefaultVerbose,
		tagA:     DefaultTagA,
		tagB:     DefaultTagB,
	}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithQuadrantCombine toggles the closed-form combine for groups of four.
func WithQuadrantCombine(enabled bool) Option {
	return func(o *options) { o.quadrant = enabled }
}

// WithVerbose logs every recursion frame through klog at info level.
// Frames are also logged when klog verbosity is 2 or higher.
func WithVerbose(verbose bool) Option {
	return func(o *options) { o.verbose = verbose }
}

// WithTags sets the message tags of the A and B exchanges.
// Panics if a tag is negative or both tags are equal.
func WithTags(tagA, tagB int) Option {
	if tagA < 0 || tagB < 0 || tagA == tagB {
		panic(panicTagsInvalid)
	}

	return func(o *options) { o.tagA, o.tagB = tagA, tagB }
}
