package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidate_Accepts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Identifier
	}{
		{"hyphenated", "valid-name", "valid-name"},
		{"underscore", "user_data", "user_data"},
		{"mixed case and digits", "Model123", "Model123"},
		{"surrounding spaces", "  trimmed  ", "trimmed"},
		{"single space padding", " trimmed ", "trimmed"},
		{"tabs and newlines", "\ttabbed\r\n", "tabbed"},
		{"single letter", "a", "a"},
		{"single digit", "1", "1"},
		{"single hyphen", "-", "-"},
		{"single underscore", "_", "_"},
		{"max length", strings.Repeat("a", MaxLength), Identifier(strings.Repeat("a", MaxLength))},
		{"max length padded", "  " + strings.Repeat("b", MaxLength) + "\t", Identifier(strings.Repeat("b", MaxLength))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Reason
	}{
		// missing / empty
		{"empty string", "", MissingOrNotString},
		{"only spaces", "   ", Empty},
		{"only whitespace", "\t\n\r", Empty},

		// path traversal, anywhere in the name
		{"dot dot slash", "../malicious", PathTraversal},
		{"dot dot backslash", `..\malicious-file`, PathTraversal},
		{"embedded", "some..sequence", PathTraversal},
		{"trailing", "name..", PathTraversal},
		{"two dots", "..", PathTraversal},
		{"three dots", "...", PathTraversal},
		{"traversal wins over absolute", "/../etc", PathTraversal},
		{"traversal wins over shell", "a..;b", PathTraversal},
		{"nested traversal", "file../traversal", PathTraversal},

		// absolute paths
		{"unix absolute", "/etc/passwd", AbsolutePath},
		{"unix absolute short", "/absolute", AbsolutePath},
		{"leading backslash", `\server\share`, AbsolutePath},
		{"windows drive", `C:\Windows\System32\evil.exe`, AbsolutePath},
		{"lowercase drive", `c:\windows\path`, AbsolutePath},
		{"drive without separator", "d:file", AbsolutePath},

		// shell metacharacters
		{"semicolon", "file; rm -rf /", ShellMetacharacter},
		{"pipe", "file|cat", ShellMetacharacter},
		{"ampersand", "file&bg", ShellMetacharacter},
		{"dollar", "$HOME", ShellMetacharacter},
		{"backtick", "`whoami`", ShellMetacharacter},
		{"less than", "file<in", ShellMetacharacter},
		{"greater than", "file>out", ShellMetacharacter},
		{"single quote", "it's", ShellMetacharacter},
		{"double quote", `say"hi"`, ShellMetacharacter},
		{"embedded backslash", `dir\file`, ShellMetacharacter},

		// reserved filesystem characters that survive the shell check
		{"asterisk", "file*name", ReservedFilesystemCharacter},
		{"asterisks", "file*with*reserved", ReservedFilesystemCharacter},
		{"question mark", "file?name", ReservedFilesystemCharacter},
		{"colon", "file:name", ReservedFilesystemCharacter},
		{"digit colon", "1:name", ReservedFilesystemCharacter},
		{"inner slash", "dir/file", ReservedFilesystemCharacter},
		{"fullwidth dots with slash", "file\uFF0E\uFF0E/unicode", ReservedFilesystemCharacter},

		// length
		{"one over max", strings.Repeat("a", MaxLength+1), TooLong},
		{"far over max", strings.Repeat("x", 1000), TooLong},
		{"multibyte over max", strings.Repeat("é", MaxLength+1), TooLong},

		// pattern
		{"spaces inside", "file with spaces", InvalidPattern},
		{"single dot", ".", InvalidPattern},
		{"dotted", "file.ts", InvalidPattern},
		{"null byte", "file\x00null", InvalidPattern},
		{"right-to-left override", "file\u202Ehidden", InvalidPattern},
		{"byte order mark", "file\uFEFFbom", InvalidPattern},
		{"leading byte order mark", "\uFEFFbom", InvalidPattern},
		{"non-breaking space padding", "\u00A0name\u00A0", InvalidPattern},
		{"multibyte under max", strings.Repeat("é", 60), InvalidPattern},
		{"invalid utf8", "name\xff", InvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateString(tt.input)
			require.Error(t, err)
			assert.Empty(t, got)

			reason, ok := ReasonOf(err)
			require.True(t, ok, "error should be a *RejectionError, got %T", err)
			assert.Equal(t, tt.want, reason, "input %q", tt.input)
			assert.Equal(t, tt.want.Message(), err.Error())
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	_, err := Validate(nil)
	require.Error(t, err)

	reason, ok := ReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, MissingOrNotString, reason)
	assert.Contains(t, err.Error(), "required and must be a string")
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"../malicious", "Path traversal detected"},
		{"/etc/passwd", "Absolute paths are not allowed"},
		{"file; rm -rf /", "Invalid characters detected"},
		{"file; rm -rf /", "; | & $ ` < > ' \" \\"},
		{"file*name", "reserved file system characters"},
		{strings.Repeat("a", 101), "Maximum length is 100 characters"},
		{"bad name", "only letters, numbers, hyphens, and underscores"},
		{"   ", "cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ValidateString(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidate_ErrorsIs(t *testing.T) {
	_, err := ValidateString("../x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRejected))

	wrapped := errors.Join(errors.New("generate"), err)
	assert.True(t, errors.Is(wrapped, ErrRejected))

	_, ok := ReasonOf(errors.New("unrelated"))
	assert.False(t, ok)
}

func TestValidate_Deterministic(t *testing.T) {
	inputs := []string{"valid-name", "../x", "file*name", "", "  a  "}
	for _, in := range inputs {
		first, firstErr := ValidateString(in)
		second, secondErr := ValidateString(in)
		assert.Equal(t, first, second)
		assert.Equal(t, firstErr, secondErr)
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	raw := strPtr("  padded  ")
	got, err := Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, Identifier("padded"), got)
	assert.Equal(t, "  padded  ", *raw)
}

func TestIsValid(t *testing.T) {
	for _, s := range []string{"valid-name", "user_data", "Model123", "a", strings.Repeat("a", 100)} {
		assert.True(t, IsValid(s), "IsValid(%q)", s)
	}
	for _, s := range []string{"", "   ", "file with spaces", "file*with*reserved", "../malicious", "/absolute", strings.Repeat("a", 101)} {
		assert.False(t, IsValid(s), "IsValid(%q)", s)
	}
}

func TestReason_String(t *testing.T) {
	tests := []struct {
		reason Reason
		want   string
	}{
		{MissingOrNotString, "missing"},
		{Empty, "empty"},
		{PathTraversal, "path-traversal"},
		{AbsolutePath, "absolute-path"},
		{ShellMetacharacter, "shell-metacharacter"},
		{ReservedFilesystemCharacter, "reserved-character"},
		{TooLong, "too-long"},
		{InvalidPattern, "invalid-pattern"},
		{Reason(99), "reason(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reason.String())
		})
	}
}

func TestIdentifier_String(t *testing.T) {
	id, err := ValidateString("user")
	require.NoError(t, err)
	assert.Equal(t, "user", id.String())
}
