package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/patchup/pkg/errors"
	"github.com/arthur-debert/patchup/pkg/patch"
	"github.com/arthur-debert/patchup/pkg/types"
)

func TestNewCatalogSetsPatchCount(t *testing.T) {
	path := writeManifest(t, `[
		{"name": "A", "description": "d", "compatiblePackages": []},
		{"name": "B", "description": "d2", "compatiblePackages": [
			{"name": "com.spotify.music", "versions": ["1.0", "1.1"]}
		]}
	]`)

	state := types.NewAppState("spotify")
	catalog, err := patch.NewCatalog(path, state)
	require.NoError(t, err)

	assert.Equal(t, 1, state.NoOfPatches)

	bucket, recommended, err := catalog.Get("spotify")
	require.NoError(t, err)
	require.Len(t, bucket, 1)
	assert.Equal(t, patch.Projected{
		Name:        "B",
		Description: "d2",
		App:         "com.spotify.music",
		Version:     "1.1",
	}, bucket[0])
	assert.Equal(t, "1.1", recommended)

	universal := catalog.Universal()
	require.Len(t, universal, 1)
	assert.Equal(t, "A", universal[0].Name)
	assert.Equal(t, patch.UniversalApp, universal[0].App)
}

func TestNewCatalogZeroPatchesIsValid(t *testing.T) {
	path := writeManifest(t, `[]`)

	state := types.NewAppState("youtube")
	_, err := patch.NewCatalog(path, state)
	require.NoError(t, err)
	assert.Equal(t, 0, state.NoOfPatches)
}

func TestNewCatalogUnsupportedApp(t *testing.T) {
	path := writeManifest(t, `[]`)

	state := types.NewAppState("winamp")
	_, err := patch.NewCatalog(path, state)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAppNotFound))
}

func TestNewCatalogLoadFailure(t *testing.T) {
	state := types.NewAppState("youtube")
	_, err := patch.NewCatalog("/nonexistent/patches.json", state)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatchLoad))
}

func TestGetUnsupportedApp(t *testing.T) {
	path := writeManifest(t, `[]`)
	catalog, err := patch.NewCatalog(path, types.NewAppState("youtube"))
	require.NoError(t, err)

	_, _, err = catalog.Get("winamp")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAppNotFound))
}

func TestGetRecommendedVersion(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     string
	}{
		{
			name:     "empty bucket defaults to latest",
			manifest: `[]`,
			want:     "latest",
		},
		{
			name: "only all-version entries default to latest",
			manifest: `[
				{"name": "A", "description": "", "compatiblePackages": [
					{"name": "com.spotify.music", "versions": []}
				]}
			]`,
			want: "latest",
		},
		{
			name: "first concrete version wins",
			manifest: `[
				{"name": "A", "description": "", "compatiblePackages": [
					{"name": "com.spotify.music", "versions": []}
				]},
				{"name": "B", "description": "", "compatiblePackages": [
					{"name": "com.spotify.music", "versions": ["8.5.0"]}
				]},
				{"name": "C", "description": "", "compatiblePackages": [
					{"name": "com.spotify.music", "versions": ["8.6.0"]}
				]}
			]`,
			want: "8.5.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.manifest)
			catalog, err := patch.NewCatalog(path, types.NewAppState("spotify"))
			require.NoError(t, err)

			_, recommended, err := catalog.Get("spotify")
			require.NoError(t, err)
			assert.Equal(t, tt.want, recommended)
		})
	}
}

func TestConfigsAppliesVersionPolicy(t *testing.T) {
	path := writeManifest(t, `[
		{"name": "B", "description": "", "compatiblePackages": [
			{"name": "com.spotify.music", "versions": ["1.0", "1.1"]}
		]}
	]`)

	state := types.NewAppState("spotify")
	catalog, err := patch.NewCatalog(path, state)
	require.NoError(t, err)

	patches, err := catalog.Configs(state)
	require.NoError(t, err)
	require.Len(t, patches, 1)
	assert.Equal(t, "1.1", state.RecommendedVersion)
	assert.False(t, state.Experimental)
}
