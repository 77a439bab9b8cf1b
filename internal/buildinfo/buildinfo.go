// Package buildinfo resolves the version metadata reported by the CLI.
package buildinfo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

const (
	// Unknown is reported for any field that could not be determined.
	Unknown = "unknown"

	// DevVersion is the version of binaries built without ldflags.
	DevVersion = "dev"

	shortHashLen = 7
	gitTimeout   = 2 * time.Second
)

// ErrDevBuild is returned by SemVer for development builds.
var ErrDevBuild = errors.New("development build has no semantic version")

// Info is the resolved build metadata.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// gitRevParse is swapped out in tests.
var gitRevParse = func() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, "git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Resolve fills in build metadata from the ldflags values, falling back to
// the GIT_HASH environment variable for the commit. It never starts a
// subprocess; see WithLocalCommit.
func Resolve(version, commit, date string) Info {
	if version == "" {
		version = DevVersion
	}
	if date == "" {
		date = Unknown
	}
	return Info{
		Version: version,
		Commit:  resolveCommit(commit),
		Date:    date,
	}
}

func resolveCommit(commit string) string {
	if commit != "" && commit != Unknown {
		return commit
	}
	if env := os.Getenv("GIT_HASH"); env != "" {
		return truncate(env, shortHashLen)
	}
	return Unknown
}

// WithLocalCommit asks git for the checkout's short hash when the commit is
// still unknown. Only `mikrus version` calls it, since the lookup can take a
// while and runs in the caller's working directory.
func (i Info) WithLocalCommit() Info {
	if i.Commit != Unknown {
		return i
	}
	if hash, err := gitRevParse(); err == nil && hash != "" {
		i.Commit = hash
	}
	return i
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// SemVer parses Version. A leading "v" is accepted.
func (i Info) SemVer() (*semver.Version, error) {
	if i.Version == "" || i.Version == DevVersion {
		return nil, ErrDevBuild
	}
	v, err := semver.NewVersion(strings.TrimPrefix(i.Version, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", i.Version, err)
	}
	return v, nil
}

// String renders the one-line form used by `mikrus version`.
func (i Info) String() string {
	return fmt.Sprintf("version %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}
