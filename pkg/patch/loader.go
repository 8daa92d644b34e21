package patch

import (
	"encoding/json"
	"os"

	"github.com/arthur-debert/patchup/pkg/errors"
	"github.com/arthur-debert/patchup/pkg/logging"
)

// LoadManifest reads the patch manifest at path and returns its
// descriptors in file order. A missing file and a malformed document
// both surface as ErrPatchLoad carrying the attempted path; the caller
// decides whether to abort or report.
func LoadManifest(path string) ([]Descriptor, error) {
	logger := logging.GetLogger("patch.loader")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrPatchLoad, "failed to read patch manifest").
			WithDetail("path", path)
	}

	var descriptors []Descriptor
	if err := json.Unmarshal(data, &descriptors); err != nil {
		return nil, errors.Wrap(err, errors.ErrPatchLoad, "failed to parse patch manifest").
			WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Int("patches", len(descriptors)).
		Msg("Loaded patch manifest")

	return descriptors, nil
}
