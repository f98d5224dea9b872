package cmd

import (
	"fmt"
	"strings"

	"github.com/arin/ochat/internal/history"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved chat transcripts",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := history.Load(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No history yet.")
			return nil
		}

		cyan := color.New(color.FgCyan)
		dim := color.New(color.FgHiBlack)
		red := color.New(color.FgRed)
		green := color.New(color.FgGreen)

		for i, e := range entries {
			dim.Printf("[%s] ", e.Timestamp.Format("2006-01-02 15:04:05"))
			dim.Printf("%s ", e.Model)
			if e.Success {
				green.Println("✓")
			} else {
				red.Println("✗")
			}
			fmt.Printf("  you → %s\n", e.Prompt)
			cyan.Printf("  ai  → %s\n", firstLine(e.Reply, 100))
			if i < len(entries)-1 {
				fmt.Println()
			}
		}
		return nil
	},
}

// firstLine truncates a reply for the one-line history listing.
func firstLine(s string, maxLen int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + " …"
	}
	if len(s) > maxLen {
		return s[:maxLen] + "…"
	}
	return s
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of transcripts to show")
}
