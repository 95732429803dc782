package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/wasixfixture/pkg/filesystem"
)

// colorEnabled reports whether out is a terminal that takes colour
func colorEnabled(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

type printer struct {
	out   io.Writer
	label lipgloss.Style
	path  lipgloss.Style
}

// configureStyling turns pterm styling off when out takes no colour and
// reports whether colour is on
func configureStyling(out io.Writer) bool {
	if colorEnabled(out) {
		return true
	}
	pterm.DisableStyling()
	return false
}

func newPrinter(out io.Writer) *printer {
	r := lipgloss.NewRenderer(out)
	if !configureStyling(out) {
		r.SetColorProfile(termenv.Ascii)
	}
	return &printer{
		out:   out,
		label: r.NewStyle().Bold(true).Width(11),
		path:  r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FD7FF"}),
	}
}

// PrintError writes err to w, in red when w takes colour
func PrintError(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	if !colorEnabled(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	style := r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	fmt.Fprintln(w, style.Render(fmt.Sprintf("Error: %v", err)))
}

func (p *printer) field(label, value string) {
	fmt.Fprintf(p.out, "%s %s\n", p.label.Render(label+":"), p.path.Render(value))
}

// shellQuote quotes s for a POSIX shell when it needs quoting
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`*?[]{}()<>|&;#~!") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = shellQuote(arg)
	}
	return strings.Join(quoted, " ")
}

// buildTree mirrors the directory at path as a pterm tree, entries sorted
func buildTree(fs filesystem.FS, path string) (pterm.TreeNode, error) {
	node := pterm.TreeNode{Text: filepath.Base(path)}

	entries, err := fs.ReadDir(path)
	if err != nil {
		return node, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if entry.IsDir() {
			child, err := buildTree(fs, filepath.Join(path, entry.Name()))
			if err != nil {
				return node, err
			}
			child.Text += "/"
			node.Children = append(node.Children, child)
			continue
		}
		node.Children = append(node.Children, pterm.TreeNode{Text: entry.Name()})
	}
	return node, nil
}
