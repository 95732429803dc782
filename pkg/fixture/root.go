package fixture

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/wasixfixture/pkg/errors"
)

// BuildRoot returns the build output root for a test executable laid out
// as <build-root>/<profile>/deps/<exe>.
func BuildRoot(exe string) string {
	dir := filepath.Dir(exe) // deps
	dir = filepath.Dir(dir)  // profile
	return filepath.Dir(dir)
}

// TestsDir returns the directory holding every fixture under buildRoot
func TestsDir(buildRoot string) string {
	return filepath.Join(buildRoot, TestsDirName)
}

// DirName returns the fixture directory name for id
func DirName(id ID) string {
	return fmt.Sprintf("t%d", id)
}

// RootFor returns the fixture root for id given the test executable path.
// It touches nothing on disk.
func RootFor(exe string, id ID) string {
	return filepath.Join(TestsDir(BuildRoot(exe)), DirName(id))
}

// Root resolves the fixture root for id and makes sure the tests directory
// above it exists. The fixture directory itself is left to the Builder.
func Root(id ID, opts ...Option) (string, error) {
	o := newOptions(opts)

	buildRoot := o.buildRoot
	if buildRoot == "" {
		exe, err := o.executable()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrExecutable, "cannot locate test executable")
		}
		buildRoot = BuildRoot(exe)
	}

	tests := TestsDir(buildRoot)
	if err := o.fs.MkdirAll(tests, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", tests).
			WithDetail("path", tests)
	}

	return filepath.Join(tests, DirName(id)), nil
}
