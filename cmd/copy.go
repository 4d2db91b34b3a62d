package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lyra-docs/lyra/internal/clipboard"
	"github.com/lyra-docs/lyra/internal/content"
)

var copyCmd = &cobra.Command{
	Use:   "copy <section-id> <block-index>",
	Short: "Copy a section's code block to the system clipboard",
	Long:  `Copies the exact text of the n-th (zero-based) code block of a section to the system clipboard, as the Copy button in the viewer does.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := content.Default()
		s, ok := catalog.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown section %q (available: %s)", args[0], strings.Join(catalog.IDs(), ", "))
		}

		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid block index %q: %w", args[1], err)
		}
		blocks := s.CodeBlocks()
		if index < 0 || index >= len(blocks) {
			return fmt.Errorf("section %q has %d code block(s); index %d is out of range", s.ID, len(blocks), index)
		}

		ctrl := clipboard.NewControl(blocks[index].Code(), clipboard.System{}, nil)
		if err := ctrl.Copy(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Copied! (%s block %d, %s)\n", s.ID, index, content.BadgeLabel(blocks[index].Language()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
