package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wasixfixture/pkg/fixture"
)

// fakeCLIEnv makes the test binary act as the CLI under test
const fakeCLIEnv = "FAKE_CARGO_WASIX"

func TestMain(m *testing.M) {
	if os.Getenv(fakeCLIEnv) == "1" {
		os.Exit(fakeCargoWasix(os.Args[1:]))
	}
	os.Exit(m.Run())
}

// fakeCargoWasix reports what it was started with. "build" also drops a
// debug artifact for the default package; "fail" exits like a failed build.
func fakeCargoWasix(args []string) int {
	dir, _ := os.Getwd()
	runner, hasRunner := os.LookupEnv(fixture.EnvRunner)

	fmt.Printf("args=%v\n", args)
	fmt.Printf("dir=%s\n", dir)
	fmt.Printf("cargo_home=%s\n", os.Getenv(fixture.EnvCargoHome))
	fmt.Printf("runner=%s set=%t\n", runner, hasRunner)

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no subcommand")
		return 1
	}

	switch args[0] {
	case "build":
		out := filepath.Join(dir, fixture.BuildDirName, fixture.TargetTriple, fixture.Debug.String())
		if err := os.MkdirAll(out, 0755); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := os.WriteFile(filepath.Join(out, fixture.DefaultPackageName+fixture.ArtifactExt), []byte("\x00asm"), 0644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	case "fail":
		fmt.Fprintln(os.Stderr, "error: could not compile `foo`")
		return 101
	}
	return 0
}

// fakeProject starts a fixture whose CLI is this test binary
func fakeProject(t *testing.T) *ProjectBuilder {
	t.Helper()
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("locating test binary: %v", err)
	}
	t.Setenv(fakeCLIEnv, "1")
	return Project(t, fixture.WithBuildRoot(t.TempDir()), fixture.WithProgram(exe))
}
