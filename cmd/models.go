package cmd

import (
	"fmt"
	"os"

	"github.com/arin/ochat/internal/chat"
	"github.com/arin/ochat/internal/config"
	"github.com/arin/ochat/internal/ollama"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models installed on the local Ollama",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		models := chat.NewClient(cfg.Endpoint).Status(cmd.Context()).Models
		if len(models) == 0 {
			// No gateway (or it reported nothing): ask the daemon directly.
			direct, err := ollama.Models(cmd.Context())
			if err != nil {
				yellow := color.New(color.FgYellow)
				yellow.Fprintln(os.Stderr, "  Ollama is not running. Start it with: ochat server start")
				return nil
			}
			models = direct
		}

		if len(models) == 0 {
			fmt.Println("No models installed. Pull one with: ochat pull llama3")
			return nil
		}

		cyan := color.New(color.FgCyan)
		dim := color.New(color.FgHiBlack)
		for _, m := range models {
			if m == cfg.Model {
				cyan.Printf("  * %s", m)
				dim.Println("  (selected)")
			} else {
				fmt.Printf("    %s\n", m)
			}
		}
		return nil
	},
}
