package fixture

import (
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/wasixfixture/pkg/errors"
)

// Placeholder package written when a test does not supply its own manifest
const (
	DefaultPackageName    = "foo"
	DefaultPackageVersion = "1.0.0"
)

type manifest struct {
	Package manifestPackage `toml:"package"`
}

type manifestPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

var defaultManifest = sync.OnceValues(func() (string, error) {
	data, err := toml.Marshal(manifest{
		Package: manifestPackage{
			Name:    DefaultPackageName,
			Version: DefaultPackageVersion,
		},
	})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrManifest, "cannot encode default manifest")
	}
	return string(data), nil
})

// DefaultManifest returns the Cargo.toml body injected by Build
func DefaultManifest() (string, error) {
	return defaultManifest()
}
