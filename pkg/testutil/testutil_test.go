package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/wasixfixture/pkg/fixture"
)

func TestProject_BuildAndRun(t *testing.T) {
	p := fakeProject(t).
		File("src/main.rs", "fn main() {}").
		Build()

	AssertFileContent(t, filepath.Join(p.Root(), "src", "main.rs"), "fn main() {}")
	AssertFileExists(t, filepath.Join(p.Root(), fixture.ManifestFile))
	AssertNoFile(t, p.DebugWasm("foo"))

	result := Run(t, p.Command("build"))

	AssertSuccess(t, result)
	AssertStdoutContains(t, result, "args=[build --color=never]")
	AssertStdoutContains(t, result, "cargo_home="+p.CargoHome())
	AssertStdoutContains(t, result, "set=false")
	AssertFileExists(t, p.DebugWasm("foo"))
	AssertNoFile(t, p.ReleaseWasm("foo"))
}

func TestProject_RunsInFixtureRoot(t *testing.T) {
	p := fakeProject(t).Build()

	result := Run(t, p.Command("check"))

	AssertSuccess(t, result)
	// The root may be reached through a symlinked temp dir.
	want, err := filepath.EvalSymlinks(p.Root())
	require.NoError(t, err)
	AssertStdoutContains(t, result, fmt.Sprintf("dir=%s\n", want))
}

func TestProject_RuntimeOverrideReachesCLI(t *testing.T) {
	p := fakeProject(t).OverrideRuntime("wasmtime").Build()

	result := Run(t, p.Command("run"))

	AssertSuccess(t, result)
	AssertStdoutContains(t, result, "runner=wasmtime set=true")
}

func TestProject_ExtraArgs(t *testing.T) {
	p := fakeProject(t).Build()

	cmd := p.Command("build")
	cmd.Args = append(cmd.Args, "--release")
	result := Run(t, cmd)

	AssertStdoutContains(t, result, "args=[build --color=never --release]")
}

func TestRun_Failure(t *testing.T) {
	p := fakeProject(t).Build()

	result := Run(t, p.Command("fail"))

	AssertFailure(t, result)
	AssertExitCode(t, result, 101)
	AssertStderrContains(t, result, "could not compile")
}

func TestRun_ProgramMissing(t *testing.T) {
	p := Project(t,
		fixture.WithBuildRoot(t.TempDir()),
		fixture.WithProgram(filepath.Join(t.TempDir(), "no-such-cli")),
	).Build()

	result := Run(t, p.Command("build"))

	assert.Equal(t, -1, result.ExitCode)
}

func TestRun_WithContext(t *testing.T) {
	p := fakeProject(t).Build()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	result := Run(t, p.CommandContext(ctx, "build"))

	AssertSuccess(t, result)
}

func TestProject_RerunStartsClean(t *testing.T) {
	buildRoot := t.TempDir()

	first := Project(t, fixture.WithBuildRoot(buildRoot)).File("old.rs", "old").Build()
	AssertFileExists(t, filepath.Join(first.Root(), "old.rs"))

	// Same test, same ID, same directory.
	second := Project(t, fixture.WithBuildRoot(buildRoot)).File("new.rs", "new").Build()

	assert.Equal(t, first.Root(), second.Root())
	AssertNoFile(t, filepath.Join(second.Root(), "old.rs"))
	AssertFileContent(t, filepath.Join(second.Root(), "new.rs"), "new")
}

func TestProject_DistinctTestsDistinctRoots(t *testing.T) {
	buildRoot := t.TempDir()
	roots := make(map[string]bool)

	for i := 0; i < 3; i++ {
		t.Run(fmt.Sprintf("sub%d", i), func(t *testing.T) {
			p := Project(t, fixture.WithBuildRoot(buildRoot)).Build()
			roots[p.Root()] = true
		})
	}

	assert.Len(t, roots, 3)
	entries, err := os.ReadDir(filepath.Join(buildRoot, fixture.TestsDirName))
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
