package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lyra-docs/lyra/internal/content"
	"github.com/lyra-docs/lyra/internal/render"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the documentation sections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCODE BLOCKS")
		for _, s := range content.Default().Sections() {
			fmt.Fprintf(w, "%s\t%s\t%d\n", s.ID, s.Title, len(s.CodeBlocks()))
		}
		return w.Flush()
	},
}

var sectionsShowCmd = &cobra.Command{
	Use:   "show <section-id>",
	Short: "Print a section as markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := content.Default()
		s, ok := catalog.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown section %q (available: %s)", args[0], strings.Join(catalog.IDs(), ", "))
		}
		fmt.Fprint(cmd.OutOrStdout(), render.SectionMarkdown(s))
		return nil
	},
}

func init() {
	sectionsCmd.AddCommand(sectionsShowCmd)
	rootCmd.AddCommand(sectionsCmd)
}
