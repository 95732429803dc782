package fixture

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/wasixfixture/pkg/filesystem"
	"github.com/arthur-debert/wasixfixture/pkg/logging"
)

type options struct {
	buildRoot  string
	executable func() (string, error)
	program    string
	fs         filesystem.FS
	logger     zerolog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		executable: os.Executable,
		program:    DefaultProgram,
		fs:         filesystem.NewOS(),
		logger:     logging.GetLogger("fixture"),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option customizes how fixtures are located and written
type Option func(*options)

// WithBuildRoot uses dir as the build root instead of deriving it from the
// running executable
func WithBuildRoot(dir string) Option {
	return func(o *options) { o.buildRoot = dir }
}

// WithExecutable replaces os.Executable as the source of the executable path
func WithExecutable(fn func() (string, error)) Option {
	return func(o *options) { o.executable = fn }
}

// WithFS sets the filesystem fixtures are written to
func WithFS(fs filesystem.FS) Option {
	return func(o *options) { o.fs = fs }
}

// WithLogger sets the logger used for fixture diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithProgram sets the CLI that Fixture.Command runs
func WithProgram(program string) Option {
	return func(o *options) { o.program = program }
}
