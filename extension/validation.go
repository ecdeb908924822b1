package extension

import (
	"strings"

	"github.com/Okanegahoshi/GDevelop/errors"
)

// MaxNameLength is the maximum length accepted for an extension name
const MaxNameLength = 1024

// ValidateExtensionName validates an extension name before it is used for
// namespacing and in generated identifiers. Names containing the namespace
// separator are rejected because they would produce ambiguous namespaced
// identifiers.
func ValidateExtensionName(name string) error {
	if name == "" {
		return errors.WrapInvalid(errors.ErrInvalidName, "Extension", "ValidateExtensionName", "empty name")
	}
	if len(name) > MaxNameLength {
		return errors.WrapInvalid(errors.ErrInvalidName, "Extension", "ValidateExtensionName", "name too long")
	}
	if strings.Contains(name, NamespaceSeparator) {
		return errors.WrapInvalid(
			errors.ErrInvalidName, "Extension", "ValidateExtensionName", "namespace separator in name")
	}
	// Allow alphanumeric, dash, underscore, dot
	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.') {
			return errors.WrapInvalid(
				errors.ErrInvalidName, "Extension", "ValidateExtensionName", "invalid name characters")
		}
	}
	return nil
}
