package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxLength is the maximum number of characters in a sanitized name.
const MaxLength = 100

const (
	// asciiSpace is the set trimmed from both ends of a raw name. Unicode
	// spaces and format characters are left in place and rejected later.
	asciiSpace = " \t\n\v\f\r"

	// ShellMetacharacters are rejected before any other character class.
	ShellMetacharacters = ";|&$`<>'\"\\"

	// ReservedCharacters are reserved by common filesystems. Only /, :, ?
	// and * can reach this check; the rest are caught as shell metacharacters.
	ReservedCharacters = `<>:"/|?*`
)

var (
	drivePrefix  = regexp.MustCompile(`^[A-Za-z]:`)
	validPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// ErrRejected matches every *RejectionError via errors.Is.
var ErrRejected = errors.New("name rejected")

// Identifier is a name that passed Validate. Values of this type are
// non-empty, at most MaxLength characters, and contain only ASCII letters,
// digits, hyphens, and underscores.
type Identifier string

// String returns the identifier as a plain string.
func (id Identifier) String() string { return string(id) }

// Validate checks raw against the naming rules and returns the trimmed name.
// A nil raw means the name was not supplied at all.
func Validate(raw *string) (Identifier, error) {
	if raw == nil || *raw == "" {
		return "", reject(MissingOrNotString)
	}

	trimmed := strings.Trim(*raw, asciiSpace)

	if len(trimmed) == 0 {
		return "", reject(Empty)
	}

	if strings.Contains(trimmed, "..") {
		return "", reject(PathTraversal)
	}

	if strings.HasPrefix(trimmed, "/") ||
		strings.HasPrefix(trimmed, `\`) ||
		drivePrefix.MatchString(trimmed) {
		return "", reject(AbsolutePath)
	}

	if strings.ContainsAny(trimmed, ShellMetacharacters) {
		return "", reject(ShellMetacharacter)
	}

	if strings.ContainsAny(trimmed, ReservedCharacters) {
		return "", reject(ReservedFilesystemCharacter)
	}

	if utf8.RuneCountInString(trimmed) > MaxLength {
		return "", reject(TooLong)
	}

	if !validPattern.MatchString(trimmed) {
		return "", reject(InvalidPattern)
	}

	return Identifier(trimmed), nil
}

// ValidateString is Validate for a name that is known to be present.
func ValidateString(s string) (Identifier, error) {
	return Validate(&s)
}

// IsValid reports whether s would be accepted by Validate.
func IsValid(s string) bool {
	_, err := ValidateString(s)
	return err == nil
}
