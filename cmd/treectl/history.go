package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored check-ins, oldest first",
	Long: `List stored check-ins, oldest first.

Example:
  treectl history --limit 7
  treectl history -o json`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Show only the most recent N entries (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := openService(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer closeStore()

	doc := svc.History(cmd.Context())
	if historyLimit > 0 && len(doc.Entries) > historyLimit {
		doc.Entries = doc.Entries[len(doc.Entries)-historyLimit:]
	}
	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), doc)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tMCQ\tSENTIMENT\tMOOD\tTEXT")
	for _, e := range doc.Entries {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", e.Date, e.MCQScore, e.Sentiment, e.Mood, truncate(e.FreeText, 40))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d entries, current health %d\n", len(doc.Entries), doc.CurrentHealth)
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
