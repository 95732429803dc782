package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/wasixfixture/pkg/config"
	"github.com/arthur-debert/wasixfixture/pkg/fixture"
)

var loadConfig = sync.OnceValues(func() (*config.Config, error) {
	return config.Load()
})

// ProjectBuilder is a fixture.Builder bound to a test
type ProjectBuilder struct {
	tb      testing.TB
	builder *fixture.Builder
}

// Project starts the fixture for tb. Options are applied after the loaded
// configuration, so they win over it.
func Project(tb testing.TB, opts ...fixture.Option) *ProjectBuilder {
	tb.Helper()

	cfg, err := loadConfig()
	require.NoError(tb, err, "loading harness configuration")

	b, err := fixture.Project(tb, append(cfg.FixtureOptions(), opts...)...)
	require.NoError(tb, err, "creating fixture")

	return &ProjectBuilder{tb: tb, builder: b}
}

// Root returns the fixture root directory
func (p *ProjectBuilder) Root() string {
	return p.builder.Root()
}

// File writes body to path inside the fixture
func (p *ProjectBuilder) File(path, body string) *ProjectBuilder {
	p.tb.Helper()
	require.NoError(p.tb, p.builder.File(path, body).Err(), "writing %s", path)
	return p
}

// OverrideRuntime sets the runner used for compiled artifacts
func (p *ProjectBuilder) OverrideRuntime(runtime string) *ProjectBuilder {
	p.builder.OverrideRuntime(runtime)
	return p
}

// Build finishes the fixture
func (p *ProjectBuilder) Build() *fixture.Fixture {
	p.tb.Helper()
	f, err := p.builder.Build()
	require.NoError(p.tb, err, "finishing fixture")
	return f
}
