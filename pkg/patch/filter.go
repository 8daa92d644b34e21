package patch

import (
	"github.com/arthur-debert/patchup/pkg/logging"
)

// Emitter receives the include/exclude decisions that make up the
// final patch selection. Implementations must treat repeated calls
// for the same name as no-ops.
type Emitter interface {
	Include(name string)
	Exclude(name string)
}

// FilterSelection walks the app's bucket and emits one decision per
// patch: exclude when its normalized name was requested for
// exclusion, include otherwise. A second pass force-includes every
// requested name that is not itself a universal bucket entry.
//
// The second pass compares the raw request against each universal
// entry's full identity rather than its normalized name, so no
// request is suppressed there in practice. It may therefore repeat an
// include already emitted by the first pass; the emitter's
// idempotency absorbs the duplicates.
func FilterSelection(bucket, universal []Projected, includeRequests, excludeRequests []string, emit Emitter) {
	logger := logging.GetLogger("patch.filter")

	excluded := make(map[string]bool, len(excludeRequests))
	for _, name := range excludeRequests {
		excluded[name] = true
	}

	for _, projected := range bucket {
		name := projected.NormalizedName()
		if excluded[name] {
			logger.Trace().Str("patch", name).Msg("Excluding patch")
			emit.Exclude(name)
		} else {
			emit.Include(name)
		}
	}

	for _, name := range includeRequests {
		if !universalHasIdentity(universal, name) {
			emit.Include(name)
		}
	}
}

// universalHasIdentity reports whether name equals the full identity
// string of any universal bucket entry.
func universalHasIdentity(universal []Projected, name string) bool {
	for _, projected := range universal {
		if projected.String() == name {
			return true
		}
	}
	return false
}
