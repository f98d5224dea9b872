package cmd

import (
	"fmt"

	"github.com/arin/ochat/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ochat configuration",
}

var setModelCmd = &cobra.Command{
	Use:   "set-model <model-name>",
	Short: "Set the model used for chat sessions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetModel(args[0]); err != nil {
			return fmt.Errorf("failed to save model: %w", err)
		}
		fmt.Printf("Model set to %s.\n", args[0])
		return nil
	},
}

var setRunnerCmd = &cobra.Command{
	Use:   "set-runner <runner>",
	Short: "Set the runner name sent with chat requests (default: ollama)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetRunner(args[0]); err != nil {
			return fmt.Errorf("failed to save runner: %w", err)
		}
		fmt.Printf("Runner set to %s.\n", args[0])
		return nil
	},
}

var setEndpointCmd = &cobra.Command{
	Use:   "set-endpoint <url>",
	Short: "Set the gateway endpoint (default: http://localhost:3000)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetEndpoint(args[0]); err != nil {
			return fmt.Errorf("failed to save endpoint: %w", err)
		}
		fmt.Printf("Endpoint set to %s.\n", args[0])
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		model := cfg.Model
		if model == "" {
			model = "(auto — first installed model)"
		}
		fmt.Printf("Model:      %s\n", model)
		fmt.Printf("Runner:     %s\n", cfg.Runner)
		fmt.Printf("Endpoint:   %s\n", cfg.Endpoint)
		fmt.Printf("Config Dir: %s\n", config.Dir())
		return nil
	},
}

func init() {
	configCmd.AddCommand(setModelCmd)
	configCmd.AddCommand(setRunnerCmd)
	configCmd.AddCommand(setEndpointCmd)
	configCmd.AddCommand(showCmd)
}
