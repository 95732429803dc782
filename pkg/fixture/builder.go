package fixture

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/wasixfixture/pkg/errors"
	"github.com/arthur-debert/wasixfixture/pkg/filesystem"
)

// Builder populates a fixture directory. Calls chain; the first failure is
// kept and turns every later call into a no-op, so a chain can be checked
// once with Err or Build.
type Builder struct {
	root            string
	runtimeOverride *string
	program         string
	sawManifest     bool
	err             error

	fs     filesystem.FS
	logger zerolog.Logger
}

// NewBuilder starts a fixture at root. Whatever already lives at root is
// removed so every fixture starts from an empty directory.
func NewBuilder(root string, opts ...Option) (*Builder, error) {
	o := newOptions(opts)
	b := &Builder{
		root:    root,
		program: o.program,
		fs:      o.fs,
		logger:  o.logger,
	}

	b.logger.Info().Str("root", root).Msg("Creating fixture")

	if err := b.fs.RemoveAll(root); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, errors.ErrDirRemove, "cannot clear %s", root).
			WithDetail("root", root)
	}
	if err := b.fs.MkdirAll(root, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", root).
			WithDetail("root", root)
	}

	return b, nil
}

// Project allocates the fixture for key and starts building it
func Project(key any, opts ...Option) (*Builder, error) {
	root, err := Root(NextID(key), opts...)
	if err != nil {
		return nil, err
	}
	return NewBuilder(root, opts...)
}

// Root returns the fixture root directory
func (b *Builder) Root() string {
	return b.root
}

// Err returns the first error recorded by the builder
func (b *Builder) Err() error {
	return b.err
}

// File writes body to rel, relative to the fixture root, creating parent
// directories as needed. Writing the same path twice keeps the last body.
func (b *Builder) File(rel, body string) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.writeFile(rel, body)
	return b
}

// OverrideRuntime makes every invocation run compiled artifacts with
// runtime instead of the CLI's default runner
func (b *Builder) OverrideRuntime(runtime string) *Builder {
	b.runtimeOverride = &runtime
	return b
}

// Build writes the default manifest unless one was written and returns the
// finished Fixture. The builder stays usable, but tests should treat Build
// as the last call.
func (b *Builder) Build() (*Fixture, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.sawManifest {
		body, err := DefaultManifest()
		if err != nil {
			return nil, err
		}
		if err := b.File(ManifestFile, body).Err(); err != nil {
			return nil, err
		}
	}

	f := &Fixture{
		root:    b.root,
		program: b.program,
	}
	if b.runtimeOverride != nil {
		override := *b.runtimeOverride
		f.runtimeOverride = &override
	}
	return f, nil
}

func (b *Builder) writeFile(rel, body string) error {
	if !filepath.IsLocal(rel) {
		return errors.Newf(errors.ErrInvalidPath, "%q is not a path inside the fixture", rel).
			WithDetail("root", b.root)
	}
	if filepath.Clean(rel) == ManifestFile {
		b.sawManifest = true
	}

	path := filepath.Join(b.root, rel)
	if err := b.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent of %s", rel).
			WithDetail("path", path)
	}
	if err := b.fs.WriteFile(path, []byte(body), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", rel).
			WithDetail("path", path)
	}

	b.logger.Debug().Str("path", rel).Int("bytes", len(body)).Msg("Wrote fixture file")
	return nil
}
