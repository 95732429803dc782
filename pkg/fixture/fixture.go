package fixture

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Fixture is a finished project directory. It holds no open resources and
// never changes after Build.
type Fixture struct {
	root            string
	runtimeOverride *string
	program         string
}

// At describes an existing fixture directory without touching it. Only
// WithProgram applies; no runtime override is set.
func At(root string, opts ...Option) *Fixture {
	o := newOptions(opts)
	return &Fixture{root: root, program: o.program}
}

// Root returns the fixture root directory
func (f *Fixture) Root() string {
	return f.root
}

// BuildDir returns the build output directory
func (f *Fixture) BuildDir() string {
	return filepath.Join(f.root, BuildDirName)
}

// CargoHome returns the isolated configuration home given to the CLI
func (f *Fixture) CargoHome() string {
	return filepath.Join(f.root, CargoHomeDirName)
}

// Artifact returns where the CLI puts the compiled module name for profile
func (f *Fixture) Artifact(profile Profile, name string) string {
	return filepath.Join(f.BuildDir(), TargetTriple, profile.String(), name+ArtifactExt)
}

// DebugWasm returns the debug artifact path for name
func (f *Fixture) DebugWasm(name string) string {
	return f.Artifact(Debug, name)
}

// ReleaseWasm returns the release artifact path for name
func (f *Fixture) ReleaseWasm(name string) string {
	return f.Artifact(Release, name)
}

// RuntimeOverride returns the runtime override, if one was set
func (f *Fixture) RuntimeOverride() (string, bool) {
	if f.runtimeOverride == nil {
		return "", false
	}
	return *f.runtimeOverride, true
}

// Program returns the CLI that Command runs
func (f *Fixture) Program() string {
	return f.program
}

// Environ returns the environment for CLI invocations: the current process
// environment without any inherited CARGO_HOME or runner setting, plus the
// fixture's own values.
func (f *Fixture) Environ() []string {
	parent := os.Environ()
	env := make([]string, 0, len(parent)+2)
	for _, kv := range parent {
		key, _, _ := strings.Cut(kv, "=")
		if key == EnvCargoHome || key == EnvRunner {
			continue
		}
		env = append(env, kv)
	}

	env = append(env, EnvCargoHome+"="+f.CargoHome())
	if runtime, ok := f.RuntimeOverride(); ok {
		env = append(env, EnvRunner+"="+runtime)
	}
	return env
}

// Command returns an unstarted invocation of the CLI running subcommand
// inside the fixture. Callers may append arguments before running it.
func (f *Fixture) Command(subcommand string) *exec.Cmd {
	return f.configure(exec.Command(f.program, subcommand, ColorFlag))
}

// CommandContext is Command with a context that kills the process when done
func (f *Fixture) CommandContext(ctx context.Context, subcommand string) *exec.Cmd {
	return f.configure(exec.CommandContext(ctx, f.program, subcommand, ColorFlag))
}

func (f *Fixture) configure(cmd *exec.Cmd) *exec.Cmd {
	cmd.Dir = f.root
	cmd.Env = f.Environ()
	return cmd
}
