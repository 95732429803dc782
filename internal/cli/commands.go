package cli

import (
	stderrors "errors"
	"fmt"
	iofs "io/fs"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/wasixfixture/internal/commands"
	"github.com/arthur-debert/wasixfixture/internal/version"
	"github.com/arthur-debert/wasixfixture/pkg/config"
	"github.com/arthur-debert/wasixfixture/pkg/errors"
	"github.com/arthur-debert/wasixfixture/pkg/filesystem"
	"github.com/arthur-debert/wasixfixture/pkg/fixture"
	"github.com/arthur-debert/wasixfixture/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity   int
		configPaths []string
		cfg         = &config.Config{Program: fixture.DefaultProgram}
	)

	rootCmd := &cobra.Command{
		Use:     "wasixfixture",
		Short:   commands.MsgRootShort,
		Long:    commands.MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPaths...)
			if err != nil {
				return err
			}
			*cfg = *loaded

			if !cmd.Flags().Changed("verbose") {
				verbosity = cfg.Verbosity
			}
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringSliceVar(&configPaths, "config", nil, "Config file(s) to load instead of the user config")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newNewCmd(cfg))
	rootCmd.AddCommand(newPathsCmd(cfg))
	rootCmd.AddCommand(newTreeCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: commands.MsgVersionShort,
		Long:  commands.MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wasixfixture version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func newNewCmd(cfg *config.Config) *cobra.Command {
	var (
		id           uint64
		buildRoot    string
		printCommand string
	)

	cmd := &cobra.Command{
		Use:     "new <fixture.yaml>",
		Short:   commands.MsgNewShort,
		Long:    commands.MsgNewLong,
		Example: commands.MsgNewExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.WithFields(map[string]interface{}{
				"component":   "cli.new",
				"id":          id,
				"description": args[0],
			})
			done := logging.LogOperationStart(logger, "new")
			defer done()

			// This binary is not inside a build tree; never derive the root from it.
			if buildRoot == "" && cfg.BuildRoot == "" {
				return errors.New(errors.ErrInvalidInput, commands.MsgErrNoBuildRoot)
			}

			desc, err := readDescription(args[0])
			if err != nil {
				return err
			}

			opts := cfg.FixtureOptions()
			if buildRoot != "" {
				opts = append(opts, fixture.WithBuildRoot(buildRoot))
			}

			root, err := fixture.Root(fixture.ID(id), opts...)
			if err != nil {
				return err
			}
			b, err := fixture.NewBuilder(root, opts...)
			if err != nil {
				return err
			}
			fx, err := desc.apply(b).Build()
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			p.field(commands.MsgFixtureLabel, fx.Root())
			if printCommand == "" {
				return nil
			}

			c := fx.Command(printCommand)
			p.field(commands.MsgCommandLabel, shellJoin(c.Args))
			p.field(commands.MsgEnvLabel, fixture.EnvCargoHome+"="+shellQuote(fx.CargoHome()))
			if runner, ok := fx.RuntimeOverride(); ok {
				p.field(commands.MsgEnvLabel, fixture.EnvRunner+"="+shellQuote(runner))
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&id, "id", 0, "Fixture id, the directory becomes tests/t<id>")
	cmd.Flags().StringVar(&buildRoot, "build-root", "", "Build root to create the fixture under")
	cmd.Flags().StringVar(&printCommand, "print-command", "", "Print the invocation of this subcommand")

	return cmd
}

func newPathsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "paths <root> <name>",
		Short: commands.MsgPathsShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fx := fixture.At(args[0], cfg.FixtureOptions()...)
			name := args[1]

			p := newPrinter(cmd.OutOrStdout())
			p.field(commands.MsgBuildDirLabel, fx.BuildDir())
			p.field(commands.MsgCargoHomeLabel, fx.CargoHome())
			p.field(commands.MsgDebugLabel, fx.DebugWasm(name))
			p.field(commands.MsgReleaseLabel, fx.ReleaseWasm(name))
			return nil
		},
	}
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <root>",
		Short: commands.MsgTreeShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			fs := filesystem.NewOS()

			info, err := fs.Stat(root)
			if err != nil {
				code := errors.ErrInvalidInput
				if stderrors.Is(err, iofs.ErrNotExist) {
					code = errors.ErrNotFound
				}
				return errors.Wrapf(err, code, commands.MsgErrNoFixtureRoot, root).
					WithDetail("path", root)
			}
			if !info.IsDir() {
				return errors.Newf(errors.ErrInvalidInput, commands.MsgErrNotFixture, root).
					WithDetail("path", root)
			}

			out := cmd.OutOrStdout()
			configureStyling(out)
			node, err := buildTree(fs, root)
			if err != nil {
				return err
			}
			node.Text = root
			rendered, err := pterm.DefaultTree.WithRoot(node).Srender()
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
			return nil
		},
	}
}
