package assets

import (
	"fmt"
	"regexp"
)

// MaxAssetNameLength bounds asset names accepted by the loaders.
const MaxAssetNameLength = 64

var assetNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Only letters, digits, '-' and '_' are accepted, which rules out path
// separators, traversal and extension changes.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > MaxAssetNameLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, MaxAssetNameLength)
	}
	if !assetNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
