package patch

import (
	"github.com/arthur-debert/patchup/pkg/apps"
	"github.com/arthur-debert/patchup/pkg/logging"
	"github.com/arthur-debert/patchup/pkg/types"
)

// Catalog holds the indexed buckets of one manifest load. Each load
// produces a fresh catalog; nothing is cached across loads.
type Catalog struct {
	buckets Buckets
}

// NewCatalog loads the manifest at path, indexes it, and records the
// target app's patch count on state. Zero patches is valid and not an
// error; an unsupported app name is.
func NewCatalog(path string, state *types.AppState) (*Catalog, error) {
	logger := logging.GetLogger("patch.catalog")
	defer logging.LogOperationStart(logger, "catalog-load")()

	descriptors, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}

	catalog := &Catalog{buckets: Index(descriptors)}

	key, err := apps.BucketKeyFor(state.AppName)
	if err != nil {
		return nil, err
	}
	state.NoOfPatches = len(catalog.buckets[key])

	logger.Info().
		Str("app", state.AppName).
		Int("patches", state.NoOfPatches).
		Msg("Patch catalog ready")

	return catalog, nil
}

// Get returns the patch bucket for the given short app name along
// with the recommended version: the version of the first entry in
// bucket order that carries a concrete version, or "latest" when no
// entry does.
func (c *Catalog) Get(app string) ([]Projected, string, error) {
	key, err := apps.BucketKeyFor(app)
	if err != nil {
		return nil, "", err
	}

	bucket := c.buckets[key]
	version := VersionLatest
	for _, projected := range bucket {
		if projected.Version != VersionAll {
			version = projected.Version
			break
		}
	}
	return bucket, version, nil
}

// Universal returns the bucket of universal patches.
func (c *Catalog) Universal() []Projected {
	return c.buckets.Universal()
}

// Configs resolves the full patch selection for the app in state and
// applies the version policy, leaving the effective version and
// experimental flag on state.
func (c *Catalog) Configs(state *types.AppState) ([]Projected, error) {
	patches, recommended, err := c.Get(state.AppName)
	if err != nil {
		return nil, err
	}
	ApplyVersionPolicy(state, recommended)
	return patches, nil
}
