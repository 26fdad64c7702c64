package paths

import (
	"strings"

	"github.com/arthur-debert/stashdot/pkg/errors"
)

// ValidatePackageName checks that a package name names a single directory
// directly under the source root.
func ValidatePackageName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "package name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "package name %q cannot contain path separators", name)
	}

	if name == "." || name == ".." {
		return errors.New(errors.ErrInvalidInput, "package name cannot be '.' or '..'")
	}

	for _, r := range name {
		if r < 32 {
			return errors.Newf(errors.ErrInvalidInput, "package name %q contains control characters", name)
		}
	}

	return nil
}

// NormalizePackageName strips trailing slashes left by shell completion.
func NormalizePackageName(name string) string {
	return strings.TrimRight(name, "/")
}
