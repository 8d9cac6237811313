package errors

import (
	"strings"
	"unicode"
)

// ValidatePaths validates the set of root paths passed to a ranking run.
// At least one path is required and none may be empty or contain
// control characters. Existence is checked later by the provider, which
// reports richer context.
func ValidatePaths(paths []string) error {
	if len(paths) == 0 {
		return New(ErrCodeInvalidPath, "at least one root path is required")
	}
	for _, p := range paths {
		if p == "" {
			return New(ErrCodeInvalidPath, "root path cannot be empty")
		}
		for _, r := range p {
			if r == '\x00' || unicode.IsControl(r) {
				return New(ErrCodeInvalidPath, "root path contains invalid characters: %q", p)
			}
		}
	}
	return nil
}

// ValidateExtensions validates a file-extension filter set.
// Extensions must start with a dot and contain no path separators.
// An empty set is valid and means "use the provider's full supported set".
func ValidateExtensions(exts []string) error {
	for _, ext := range exts {
		if ext == "" {
			return New(ErrCodeInvalidInput, "extension cannot be empty")
		}
		if !strings.HasPrefix(ext, ".") {
			return New(ErrCodeInvalidInput, "extension must start with a dot: %q", ext)
		}
		if strings.ContainsAny(ext, "/\\") {
			return New(ErrCodeInvalidInput, "extension cannot contain path separators: %q", ext)
		}
	}
	return nil
}

// ValidateOutputFormat validates an output format name against the
// allowed set.
func ValidateOutputFormat(format string, allowed []string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unknown format %q (available: %s)", format, strings.Join(allowed, ", "))
}
