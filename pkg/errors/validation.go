package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// graphqlNameRegex matches valid GraphQL names: a leading letter or
// underscore followed by letters, digits, or underscores.
var graphqlNameRegex = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// ValidateTypeName validates a GraphQL type name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
//   - Must match the GraphQL name grammar
//
// Names beginning with "__" are valid GraphQL names; callers that exclude
// introspection meta-types do so separately.
func ValidateTypeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "type name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "type name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "type name contains invalid control characters")
		}
	}

	if !graphqlNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid GraphQL type name: %q", name)
	}

	return nil
}

// ValidateFieldName validates a GraphQL field or argument name.
// Same grammar as type names; reported against the owning type for diagnosis.
func ValidateFieldName(typeName, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "type %s: field name cannot be empty", typeName)
	}

	if !graphqlNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "type %s: invalid field name: %q", typeName, name)
	}

	return nil
}

// ValidateOutputPath validates a caller-supplied artifact path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//
// Absolute paths are allowed; the CLI writes wherever the caller points it.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// ValidateFormat validates an output format name against the allowed set.
// Format matching is case-insensitive; the canonical form is lowercase.
func ValidateFormat(format string, allowed []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}

	f := strings.ToLower(format)
	for _, a := range allowed {
		if f == a {
			return nil
		}
	}

	return New(ErrCodeInvalidFormat, "unsupported output format %q (supported: %s)",
		format, strings.Join(allowed, ", "))
}
