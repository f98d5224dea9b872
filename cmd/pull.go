package cmd

import (
	"fmt"
	"strings"

	"github.com/arin/ochat/internal/ollama"
	"github.com/arin/ochat/internal/ui"
	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull <model>",
	Short: "Download a model to the local Ollama",
	Long: `Download a model from the Ollama library, showing live progress.
Browse available models at https://ollama.com/library`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model := strings.TrimSpace(args[0])
		if model == "" {
			return fmt.Errorf("no model name given")
		}

		sp := ui.NewSpinner(fmt.Sprintf("Pulling %s...", model))
		sp.Start()

		for p := range ollama.Pull(cmd.Context(), model) {
			if p.Done {
				if p.Err != nil {
					sp.Stop()
					return fmt.Errorf("pull %s: %w", model, p.Err)
				}
				sp.Success(fmt.Sprintf("%s ready", model))
				return nil
			}
			msg := p.Status
			if p.Total > 0 {
				msg = fmt.Sprintf("%s — %.0f%% (%s / %s)",
					p.Status, p.Percent, ollama.HumanBytes(p.Completed), ollama.HumanBytes(p.Total))
			}
			sp.Update(msg)
		}
		return nil
	},
}
