package fixture

// Fixed names of the on-disk layout and of the CLI contract
const (
	// ManifestFile is the manifest name at the fixture root
	ManifestFile = "Cargo.toml"

	// BuildDirName is the build output directory inside a fixture
	BuildDirName = "target"

	// CargoHomeDirName is the isolated configuration home inside a fixture
	CargoHomeDirName = "cargo-home"

	// TestsDirName is the directory under the build root holding all fixtures
	TestsDirName = "tests"

	// TargetTriple is the cross-compilation target artifacts are built for
	TargetTriple = "wasm32-wasmer-wasi"

	// ArtifactExt is the extension of compiled artifacts
	ArtifactExt = ".wasm"

	// DefaultProgram is the CLI under test
	DefaultProgram = "cargo-wasix"

	// ColorFlag keeps CLI output free of escape codes
	ColorFlag = "--color=never"
)

// Environment variables set on every invocation
const (
	// EnvCargoHome points the CLI at the fixture's own configuration home
	EnvCargoHome = "CARGO_HOME"

	// EnvRunner selects the runtime used to execute TargetTriple artifacts
	EnvRunner = "CARGO_TARGET_WASM32_WASMER_WASI_RUNNER"
)

// Profile is a build profile
type Profile int

const (
	Debug Profile = iota
	Release
)

// String returns the profile's directory name
func (p Profile) String() string {
	switch p {
	case Release:
		return "release"
	default:
		return "debug"
	}
}
