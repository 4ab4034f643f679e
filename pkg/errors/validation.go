package errors

import (
	"strings"
	"unicode"
)

// ValidateExtension checks a source-file extension supplied through flags or
// the config file. Extensions must start with a dot and contain no path
// separators, e.g. ".ipp".
func ValidateExtension(ext string) error {
	if ext == "" {
		return New(ErrCodeInvalidConfig, "extension cannot be empty")
	}
	if !strings.HasPrefix(ext, ".") || len(ext) == 1 {
		return New(ErrCodeInvalidConfig, "extension %q must start with a dot", ext)
	}
	if strings.ContainsAny(ext, "/\\") {
		return New(ErrCodeInvalidConfig, "extension %q cannot contain path separators", ext)
	}
	for _, r := range ext {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidConfig, "extension %q contains invalid characters", ext)
		}
	}
	return nil
}

// ValidateDirName checks a directory name to be skipped during the walk.
// Names are matched against single path elements, so they must be plain
// basenames.
func ValidateDirName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "ignored directory name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidConfig, "ignored directory %q must be a name, not a path", name)
	}
	if name == "." || name == ".." {
		return New(ErrCodeInvalidConfig, "ignored directory %q is not allowed", name)
	}
	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "ignored directory name contains invalid characters")
		}
	}
	return nil
}
