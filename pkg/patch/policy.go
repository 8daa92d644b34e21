package patch

import (
	"github.com/arthur-debert/patchup/pkg/logging"
	"github.com/arthur-debert/patchup/pkg/types"
)

// ApplyVersionPolicy decides the effective app version, records it on
// state together with its experimental status as a single assignment,
// and returns it.
//
// Without an explicit request the recommendation stands and the build
// is not experimental. An explicit request always becomes the
// effective version; it is experimental when it is the literal
// "latest" or differs from the recommendation in either direction.
// The comparison is plain string equality, not semantic versioning.
func ApplyVersionPolicy(state *types.AppState, recommended string) string {
	logger := logging.GetLogger("patch.policy")

	effective := recommended
	experimental := false

	if state.HasVersionRequest() {
		requested := state.AppVersion
		logger.Debug().
			Str("app", state.AppName).
			Str("version", requested).
			Msg("Using explicitly requested version")

		if requested == VersionLatest || requested != recommended {
			experimental = true
		}
		effective = requested
	}

	state.SetRecommendedVersion(effective, experimental)
	return effective
}
