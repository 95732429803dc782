// Package config loads harness settings.
//
// Settings are layered with koanf: embedded defaults, then the user file
// ($XDG_CONFIG_HOME/wasixfixture/config.toml) or files given explicitly,
// then WASIXFIXTURE_* environment variables. The result is validated before
// it is handed to the fixture package.
package config
