package validate

import (
	"errors"
	"fmt"
)

// Reason identifies the rule that rejected a name.
type Reason int

const (
	MissingOrNotString Reason = iota + 1
	Empty
	PathTraversal
	AbsolutePath
	ShellMetacharacter
	ReservedFilesystemCharacter
	TooLong
	InvalidPattern
)

var reasonNames = map[Reason]string{
	MissingOrNotString:          "missing",
	Empty:                       "empty",
	PathTraversal:               "path-traversal",
	AbsolutePath:                "absolute-path",
	ShellMetacharacter:          "shell-metacharacter",
	ReservedFilesystemCharacter: "reserved-character",
	TooLong:                     "too-long",
	InvalidPattern:              "invalid-pattern",
}

var reasonMessages = map[Reason]string{
	MissingOrNotString:          "Name parameter is required and must be a string",
	Empty:                       "Name parameter cannot be empty",
	PathTraversal:               `Path traversal detected. Name parameter cannot contain ".." sequences`,
	AbsolutePath:                "Absolute paths are not allowed. Name parameter must be a relative filename",
	ShellMetacharacter:          "Invalid characters detected. Name parameter cannot contain: ; | & $ ` < > ' \" \\",
	ReservedFilesystemCharacter: "Name parameter contains reserved file system characters",
	TooLong:                     fmt.Sprintf("Name parameter is too long. Maximum length is %d characters", MaxLength),
	InvalidPattern:              "Name parameter must contain only letters, numbers, hyphens, and underscores",
}

// String returns a short kebab-case name for the reason.
func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Message returns the user-facing explanation for the reason.
func (r Reason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return "Name parameter is invalid"
}

// RejectionError is returned by Validate when a name breaks a rule.
type RejectionError struct {
	Reason Reason
}

func reject(r Reason) *RejectionError {
	return &RejectionError{Reason: r}
}

// Error returns the reason's message.
func (e *RejectionError) Error() string {
	return e.Reason.Message()
}

// Is makes errors.Is(err, ErrRejected) true for every rejection.
func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}

// ReasonOf extracts the Reason from err if it wraps a *RejectionError.
func ReasonOf(err error) (Reason, bool) {
	var re *RejectionError
	if errors.As(err, &re) {
		return re.Reason, true
	}
	return 0, false
}
