package cmd

import (
	"os"

	"github.com/arin/ochat/internal/config"
	"github.com/arin/ochat/internal/ollama"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <model>",
	Short: "Remove an installed model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model := args[0]
		if err := ollama.Delete(model); err != nil {
			return err
		}

		green := color.New(color.FgGreen)
		green.Fprintf(os.Stderr, "  ✓ removed %s\n", model)

		// Drop a stale selection so the next chat auto-picks again.
		cfg, _ := config.Load()
		if cfg.Model == model {
			if err := config.SetModel(""); err == nil {
				dim := color.New(color.FgHiBlack)
				dim.Fprintln(os.Stderr, "    it was the selected model — selection cleared")
			}
		}
		return nil
	},
}
