// Package testutil is the test-facing side of the fixture harness.
//
// Project wraps fixture.Builder so that every failure stops the calling
// test at the step that failed:
//
//	p := testutil.Project(t).
//		File("src/main.rs", "fn main() {}").
//		Build()
//	result := testutil.Run(t, p.Command("build"))
//	testutil.AssertSuccess(t, result)
//	testutil.AssertFileExists(t, p.DebugWasm("foo"))
//
// Harness settings (CLI path, build root) come from pkg/config and are
// loaded once per test binary.
package testutil
