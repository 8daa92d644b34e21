// Package apps holds the fixed catalog of applications the patching
// toolchain supports. The catalog maps reverse-DNS package identifiers
// to short application names and is read-only after process start.
package apps

import (
	"github.com/arthur-debert/patchup/pkg/errors"
)

// UniversalBucket is the bucket key for patches with no declared
// compatible packages. It is deliberately not a valid bucket key of
// any registered app.
const UniversalBucket = "universal"

// Entry describes one supported application.
type Entry struct {
	// ShortName is the user-facing application name, e.g. "youtube".
	ShortName string
	// BucketKey is the stable key used to index this app's patch
	// bucket. Prefixed so it can never collide with UniversalBucket
	// or other reserved keys.
	BucketKey string
}

// shortNames maps package identifiers to short application names.
// Lookups are case-sensitive exact matches.
var shortNames = map[string]string{
	"com.reddit.frontpage":                  "reddit",
	"com.ss.android.ugc.trill":              "tiktok",
	"com.twitter.android":                   "twitter",
	"de.dwd.warnapp":                        "warnwetter",
	"com.spotify.music":                     "spotify",
	"com.awedea.nyx":                        "nyx-music-player",
	"ginlemon.iconpackstudio":               "icon_pack_studio",
	"com.ticktick.task":                     "ticktick",
	"tv.twitch.android.app":                 "twitch",
	"com.myprog.hexedit":                    "hex-editor",
	"co.windyapp.android":                   "windy",
	"org.totschnig.myexpenses":              "my-expenses",
	"com.backdrops.wallpapers":              "backdrops",
	"com.ithebk.expensemanager":             "expensemanager",
	"net.dinglisch.android.taskerm":         "tasker",
	"net.binarymode.android.irplus":         "irplus",
	"com.vsco.cam":                          "vsco",
	"com.zombodroid.MemeGenerator":          "meme-generator-free",
	"com.teslacoilsw.launcher":              "nova_launcher",
	"eu.faircode.netguard":                  "netguard",
	"com.instagram.android":                 "instagram",
	"com.nis.app":                           "inshorts",
	"com.facebook.orca":                     "messenger",
	"com.google.android.apps.recorder":      "grecorder",
	"tv.trakt.trakt":                        "trakt",
	"com.candylink.openvpn":                 "candyvpn",
	"com.sony.songpal.mdr":                  "sonyheadphone",
	"com.dci.dev.androidtwelvewidgets":      "androidtwelvewidgets",
	"io.yuka.android":                       "yuka",
	"free.reddit.news":                      "relay",
	"com.rubenmayayo.reddit":                "boost",
	"com.andrewshu.android.reddit":          "rif",
	"com.laurencedawson.reddit_sync":        "sync",
	"ml.docilealligator.infinityforreddit":  "infinity",
	"me.ccrama.redditslide":                 "slide",
	"com.onelouder.baconreader":             "bacon",
	"com.google.android.youtube":            "youtube",
	"com.google.android.apps.youtube.music": "youtube_music",
	"com.mgoogle.android.gms":               "microg",
	"jp.pxv.android":                        "pixiv",
}

// catalog is derived from shortNames at init and never mutated after.
var catalog map[string]Entry

func init() {
	catalog = make(map[string]Entry, len(shortNames))
	for pkg, short := range shortNames {
		catalog[pkg] = Entry{
			ShortName: short,
			BucketKey: "_" + short,
		}
	}
}

// ResolveShortName returns the package identifier registered for the
// given short application name. Short names are unique, so iteration
// order does not matter.
func ResolveShortName(app string) (string, error) {
	for pkg, entry := range catalog {
		if entry.ShortName == app {
			return pkg, nil
		}
	}
	return "", errors.Newf(errors.ErrAppNotFound, "app %s not supported yet", app).
		WithDetail("app", app)
}

// Lookup returns the catalog entry for a package identifier.
func Lookup(packageID string) (Entry, bool) {
	entry, ok := catalog[packageID]
	return entry, ok
}

// BucketKeyFor returns the bucket key registered for the given short
// application name.
func BucketKeyFor(app string) (string, error) {
	for _, entry := range catalog {
		if entry.ShortName == app {
			return entry.BucketKey, nil
		}
	}
	return "", errors.Newf(errors.ErrAppNotFound, "app %s not supported yet", app).
		WithDetail("app", app)
}

// Supported returns the full package-id to short-name mapping. The
// returned map is a copy; callers may mutate it freely.
func Supported() map[string]string {
	out := make(map[string]string, len(shortNames))
	for pkg, short := range shortNames {
		out[pkg] = short
	}
	return out
}

// BucketKeys returns the bucket keys of every registered app, without
// the universal bucket.
func BucketKeys() []string {
	keys := make([]string, 0, len(catalog))
	for _, entry := range catalog {
		keys = append(keys, entry.BucketKey)
	}
	return keys
}

// Count returns the number of registered applications.
func Count() int {
	return len(catalog)
}
