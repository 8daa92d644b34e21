// Package types contains the shared data types passed between
// patchup's packages.
package types

// AppState tracks one target application through a single patching
// run: what the user asked for and what the catalog resolved.
type AppState struct {
	// AppName is the short application name, e.g. "youtube".
	AppName string

	// AppVersion is the explicitly requested app version. Empty means
	// no request was made and the recommended version applies.
	AppVersion string

	// RecommendedVersion is the effective version to build against,
	// set exactly once per run by the version policy.
	RecommendedVersion string

	// Experimental marks that the effective version is not the one
	// the catalog recommends.
	Experimental bool

	// NoOfPatches is the size of this app's patch bucket after
	// indexing. Zero is valid.
	NoOfPatches int

	// IncludeRequest and ExcludeRequest hold normalized patch names
	// (lower-case, hyphenated) the user asked to force in or out.
	IncludeRequest []string
	ExcludeRequest []string
}

// NewAppState creates an AppState for the given short app name.
func NewAppState(name string) *AppState {
	return &AppState{AppName: name}
}

// SetRecommendedVersion records the effective version and its
// experimental status as a single assignment.
func (s *AppState) SetRecommendedVersion(version string, experimental bool) {
	s.RecommendedVersion = version
	s.Experimental = experimental
}

// HasVersionRequest reports whether the user explicitly requested a
// version for this app.
func (s *AppState) HasVersionRequest() bool {
	return s.AppVersion != ""
}
