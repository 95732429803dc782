package commands

// Command descriptions
const (
	MsgRootShort = "Materialize cargo-wasix test fixtures"
	MsgRootLong  = `wasixfixture creates the throwaway projects used to test cargo-wasix end
to end, shows where their build artifacts land, and prints the exact
invocation a test would run against them.`

	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	MsgNewShort = "Create a fixture from a YAML description"
	MsgNewLong  = `new reads a YAML description of a fixture and writes it to
<build-root>/tests/t<id>, replacing whatever was there. A Cargo.toml with a
placeholder package is added unless the description provides one. The build
root comes from --build-root or the build_root config key; one is required.

Description format:

  runtime: wasmtime        # optional runner override
  files:
    src/main.rs: |
      fn main() {}`
	MsgNewExample = `  # Create fixture t0 under ./target
  wasixfixture new fixture.yaml --build-root "$PWD/target"

  # Create fixture t3 and show how "build" would be invoked
  wasixfixture new fixture.yaml --build-root "$PWD/target" --id 3 --print-command build`

	MsgPathsShort = "Show the build paths of a fixture"
	MsgTreeShort  = "Show the files of a fixture"
)

// Output labels and errors
const (
	MsgFixtureLabel   = "Fixture"
	MsgCommandLabel   = "Command"
	MsgEnvLabel       = "Env"
	MsgBuildDirLabel  = "Build dir"
	MsgDebugLabel     = "Debug"
	MsgReleaseLabel   = "Release"
	MsgCargoHomeLabel = "Cargo home"

	MsgErrReadDescription  = "failed to read fixture description %s"
	MsgErrParseDescription = "failed to parse fixture description %s"
	MsgErrNotFixture       = "%s is not a directory"
	MsgErrNoFixtureRoot    = "cannot read fixture root %s"
	MsgErrNoBuildRoot      = "no build root: pass --build-root or set build_root in the config"
)
