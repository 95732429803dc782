package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/wasixfixture/internal/commands"
	"github.com/arthur-debert/wasixfixture/pkg/errors"
	"github.com/arthur-debert/wasixfixture/pkg/fixture"
)

// description is the YAML form of a fixture
type description struct {
	Runtime *string           `yaml:"runtime"`
	Files   map[string]string `yaml:"files"`
}

func readDescription(path string) (*description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := errors.ErrInvalidInput
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrNotFound
		}
		return nil, errors.Wrapf(err, code, commands.MsgErrReadDescription, path).
			WithDetail("path", path)
	}
	var d description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, commands.MsgErrParseDescription, path).
			WithDetail("path", path)
	}
	return &d, nil
}

// apply writes the description through b in path order
func (d *description) apply(b *fixture.Builder) *fixture.Builder {
	paths := make([]string, 0, len(d.Files))
	for path := range d.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		b.File(path, d.Files[path])
	}
	if d.Runtime != nil {
		b.OverrideRuntime(*d.Runtime)
	}
	return b
}
