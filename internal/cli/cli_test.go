package cli

import (
	"bytes"
	"testing"

	"github.com/mikrus-labs/mikrus/internal/buildinfo"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var testBuild = buildinfo.Info{Version: "0.1.0", Commit: "abc1234", Date: "2026-01-01"}

// setup isolates config and filesystem state for one test and returns the
// in-memory filesystem commands write to.
func setup(t *testing.T) afero.Fs {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("MIKRUS_HOME", t.TempDir())
	for _, key := range []string{"OUTPUT", "TEMPLATE", "API_URL", "LOG_LEVEL", "LOG_FORMAT", "TEMPLATES_DIR"} {
		t.Setenv("MIKRUS_"+key, "")
	}

	fs := afero.NewMemMapFs()
	orig := appFs
	appFs = fs
	t.Cleanup(func() { appFs = orig })
	return fs
}

// run executes the command tree like Execute does and captures its output.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := newRootCmd(testBuild)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = execute(root)
	return out.String(), errOut.String(), err
}
