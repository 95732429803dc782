// Package fixture materializes throwaway cargo-wasix projects for end-to-end
// tests and describes how to run the CLI against them.
//
// A test allocates an ID, which picks a directory below the build output
// tree (<build-root>/tests/t<id>). A Builder wipes that directory, collects
// file writes, injects a default Cargo.toml when the test did not write one,
// and produces a Fixture. The Fixture derives artifact paths and builds the
// exec.Cmd that runs the CLI inside the fixture with an isolated CARGO_HOME.
//
// Typical use from a test:
//
//	b, err := fixture.Project(t)
//	...
//	p, err := b.File("src/main.rs", "fn main() {}").Build()
//	...
//	cmd := p.Command("build")
//	out, err := cmd.CombinedOutput()
//
// Most tests go through pkg/testutil, which turns every error into t.Fatal.
package fixture
