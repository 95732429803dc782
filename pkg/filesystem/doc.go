// Package filesystem provides the filesystem used to materialize fixtures.
//
// FS is implemented by the real OS filesystem, which fixtures use so the
// CLI under test can see them, and by an afero-backed filesystem, which
// lets builder logic be tested in memory.
package filesystem
