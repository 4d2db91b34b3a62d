package cmd

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/lyra-docs/lyra/internal/audit"
)

var errHistoryDisabled = errors.New("explain history is disabled; set history_db in the config")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent explain requests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, closeHistory, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer closeHistory()
		if store == nil {
			return errHistoryDisabled
		}

		limit, _ := cmd.Flags().GetInt("limit")
		status, _ := cmd.Flags().GetString("status")
		entries, err := store.Query(cmd.Context(), audit.QueryFilter{
			Status: audit.Status(status),
			Limit:  limit,
		})
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No explain requests recorded.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tSTATUS\tMODEL\tDURATION\tCOST\tCODE")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%dms\t$%.4f\t%s\n",
				e.Timestamp.Local().Format(time.DateTime), e.Status, e.Model,
				e.DurationMS, e.CostUSD, firstLine(e.Code, 40))
		}
		return w.Flush()
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete explain history older than a given age",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, closeHistory, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer closeHistory()
		if store == nil {
			return errHistoryDisabled
		}

		age, _ := cmd.Flags().GetDuration("older-than")
		n, err := store.DeleteBefore(cmd.Context(), time.Now().Add(-age))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries.\n", n)
		return nil
	},
}

func firstLine(s string, max int) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + " ..."
	}
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum entries to show")
	historyCmd.Flags().String("status", "", "only show succeeded or failed requests")
	historyPruneCmd.Flags().Duration("older-than", 30*24*time.Hour, "delete entries older than this")
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}
