package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/wasixfixture/internal/version"
)

// Shells lists the shells GenCompletion supports
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GenCompletion writes the completion script for shell to w
func GenCompletion(w io.Writer, shell string) error {
	rootCmd := NewRootCmd()

	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unknown shell %q, supported: %v", shell, Shells)
	}
}

// GenMan writes the man page of the whole command tree to w
func GenMan(w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "WASIXFIXTURE",
		Section: "1",
		Source:  "wasixfixture " + version.Version,
		Manual:  "wasixfixture manual",
	}
	return doc.GenMan(NewRootCmd(), header, w)
}
