package apps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/patchup/pkg/apps"
	"github.com/arthur-debert/patchup/pkg/errors"
)

func TestResolveShortNameRoundTrip(t *testing.T) {
	// Every registered package must resolve back to itself through
	// its short name.
	for pkg, short := range apps.Supported() {
		resolved, err := apps.ResolveShortName(short)
		require.NoError(t, err, "short name %q should resolve", short)
		assert.Equal(t, pkg, resolved)
	}
}

func TestResolveShortNameNotFound(t *testing.T) {
	tests := []struct {
		name string
		app  string
	}{
		{name: "unknown app", app: "winamp"},
		{name: "package id instead of short name", app: "com.spotify.music"},
		{name: "case mismatch", app: "Spotify"},
		{name: "empty name", app: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := apps.ResolveShortName(tt.app)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrAppNotFound))
		})
	}
}

func TestLookup(t *testing.T) {
	entry, ok := apps.Lookup("com.google.android.youtube")
	require.True(t, ok)
	assert.Equal(t, "youtube", entry.ShortName)
	assert.Equal(t, "_youtube", entry.BucketKey)

	_, ok = apps.Lookup("com.example.unknown")
	assert.False(t, ok)
}

func TestBucketKeyFor(t *testing.T) {
	key, err := apps.BucketKeyFor("spotify")
	require.NoError(t, err)
	assert.Equal(t, "_spotify", key)

	_, err = apps.BucketKeyFor("unknown")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAppNotFound))
}

func TestBucketKeysAreDistinctFromUniversal(t *testing.T) {
	keys := apps.BucketKeys()
	assert.Len(t, keys, apps.Count())

	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		assert.NotEqual(t, apps.UniversalBucket, key)
		assert.False(t, seen[key], "bucket key %q duplicated", key)
		seen[key] = true
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	first := apps.Supported()
	first["com.example.injected"] = "injected"

	second := apps.Supported()
	_, ok := second["com.example.injected"]
	assert.False(t, ok, "mutating the returned map must not affect the catalog")
}
