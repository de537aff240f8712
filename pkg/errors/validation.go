package errors

import (
	"strings"
	"unicode"
)

// ValidateProjectName validates a project name for safety and correctness.
// It rejects names that could be used for path traversal when the name is
// turned into a feed document path.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path traversal sequences (.., //, \)
//   - No path separators
//   - Maximum length of 256 characters
func ValidateProjectName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidProject, "project name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidProject, "project name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidProject, "project name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidProject, "project name contains invalid characters: %q", pattern)
		}
	}

	return nil
}
