package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvermeer/zbminstall/internal/history"
)

var (
	historyLimit  int
	historyDetail bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View past wizard runs",
	Long: `View recent zbminstall operations.

Shows validation runs and install runs (simulated and applied),
newest first.`,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the history log",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := history.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		printInfo("History cleared")
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of entries to show")
	historyCmd.Flags().BoolVar(&historyDetail, "detail", false, "show detailed information")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	entries, err := history.Read(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No history entries found.")
		return nil
	}

	fmt.Printf("Recent operations (showing %d):\n\n", len(entries))

	for _, entry := range entries {
		fmt.Println(entry.Format(historyDetail))
	}

	return nil
}
