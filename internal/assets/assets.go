// Package assets provides embedded stylesheet resources for generated
// sites. Styles are addressed by name without extension; the default style
// is the one every site falls back to when no custom CSS is configured.
package assets

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultStyleName is the style used when none is configured.
const DefaultStyleName = "default"

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Rejects empty names and names containing path separators, dots, or
// traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
