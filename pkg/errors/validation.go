package errors

import (
	"strings"
	"unicode"
)

// MaxNameLength bounds skill names so labels stay renderable.
const MaxNameLength = 128

// ValidateSkillName validates a skill display name.
//
// Names are used as lookup keys and as adjacency references, so the rules
// are strict about invisible characters:
//   - No empty or whitespace-only names
//   - No control characters (including newlines and null bytes)
//   - Maximum length of MaxNameLength bytes
func ValidateSkillName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeParse, "skill name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return New(ErrCodeParse, "skill name too long (max %d characters)", MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeParse, "skill name %q contains control characters", name)
		}
	}

	return nil
}

// ValidateLevel checks that a proficiency level lies in 0..100.
func ValidateLevel(name string, level int) error {
	if level < 0 || level > 100 {
		return New(ErrCodeParse, "skill %q: level %d out of range 0..100", name, level)
	}
	return nil
}

// ValidateDimension checks a user-supplied canvas dimension.
// The engine clamps degenerate sizes itself; this is for CLI flags where a
// negative value is almost certainly a typo.
func ValidateDimension(label string, v float64) error {
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s must not be negative (got %g)", label, v)
	}
	return nil
}
