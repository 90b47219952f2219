package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateScenarioName rejects names that could not safely appear in
// artifact file names, cache keys, or URLs: empty strings, names over
// 128 characters, control characters, and path tricks like ".." or
// backslashes.
func ValidateScenarioName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "scenario name cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "scenario name too long (max 128 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "scenario name contains invalid control characters")
		}
	}
	for _, pattern := range []string{"..", "//", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "scenario name contains invalid characters: %q", pattern)
		}
	}
	return nil
}

// scenarioSlug matches names that need no escaping anywhere they travel:
// an alphanumeric start, then letters, digits, dots, underscores, or
// dashes.
var scenarioSlug = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateScenarioSlug layers the slug grammar on top of
// ValidateScenarioName. Manifest entries and builtin scenarios use it
// because their names become file name suffixes verbatim.
func ValidateScenarioSlug(name string) error {
	if err := ValidateScenarioName(name); err != nil {
		return err
	}
	if !scenarioSlug.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid scenario name: %q", name)
	}
	return nil
}

// ValidateOutputPath rejects render output paths that are empty, longer
// than 500 characters, contain control characters, or climb out of the
// target directory with "..". Absolute and relative paths both pass.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "output path cannot contain path traversal sequences (..)")
	}
	return nil
}
