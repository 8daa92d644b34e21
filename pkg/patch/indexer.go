package patch

import (
	"github.com/arthur-debert/patchup/pkg/apps"
	"github.com/arthur-debert/patchup/pkg/logging"
)

// Buckets maps bucket keys to the projected patches of one manifest
// load. Every registered app has a bucket (possibly empty) plus the
// universal bucket; the set is built once per load and not mutated
// afterward.
type Buckets map[string][]Projected

// Universal returns the bucket of patches with no compatibility
// restriction.
func (b Buckets) Universal() []Projected {
	return b[apps.UniversalBucket]
}

// Index partitions descriptors into per-app buckets. A descriptor
// with no compatible packages projects exactly once into the
// universal bucket with version "all". Otherwise it projects once per
// registered compatible package, using the last listed version or
// "all" when the package declares none. Compatible packages missing
// from the app catalog are skipped without error.
func Index(descriptors []Descriptor) Buckets {
	logger := logging.GetLogger("patch.indexer")

	buckets := make(Buckets, apps.Count()+1)
	for _, key := range apps.BucketKeys() {
		buckets[key] = []Projected{}
	}
	buckets[apps.UniversalBucket] = []Projected{}

	skipped := 0
	for _, descriptor := range descriptors {
		if len(descriptor.CompatiblePackages) == 0 {
			buckets[apps.UniversalBucket] = append(buckets[apps.UniversalBucket], Projected{
				Name:        descriptor.Name,
				Description: descriptor.Description,
				App:         UniversalApp,
				Version:     VersionAll,
			})
			continue
		}

		for _, compatible := range descriptor.CompatiblePackages {
			entry, ok := apps.Lookup(compatible.Name)
			if !ok {
				skipped++
				continue
			}

			version := VersionAll
			if len(compatible.Versions) > 0 {
				version = compatible.Versions[len(compatible.Versions)-1]
			}

			buckets[entry.BucketKey] = append(buckets[entry.BucketKey], Projected{
				Name:        descriptor.Name,
				Description: descriptor.Description,
				App:         compatible.Name,
				Version:     version,
			})
		}
	}

	logger.Debug().
		Int("descriptors", len(descriptors)).
		Int("universal", len(buckets[apps.UniversalBucket])).
		Int("skippedPackages", skipped).
		Msg("Indexed patch manifest")

	return buckets
}
