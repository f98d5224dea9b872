package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/arin/ochat/internal/ollama"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Manage the local Ollama daemon",
}

var serverStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether Ollama is running",
	RunE: func(cmd *cobra.Command, args []string) error {
		if ollama.Running(cmd.Context()) {
			color.New(color.FgGreen).Println("  ● ollama is running")
		} else {
			color.New(color.FgRed).Println("  ○ ollama is stopped")
		}
		return nil
	},
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start `ollama serve` in the background",
	RunE: func(cmd *cobra.Command, args []string) error {
		if ollama.Running(cmd.Context()) {
			fmt.Println("Already running.")
			return nil
		}
		if err := ollama.Start(); err != nil {
			return err
		}

		// Give the daemon a moment to come up.
		for i := 0; i < 10; i++ {
			time.Sleep(500 * time.Millisecond)
			if ollama.Running(cmd.Context()) {
				color.New(color.FgGreen).Fprintln(os.Stderr, "  ✓ ollama started")
				return nil
			}
		}
		return fmt.Errorf("ollama did not come up — check: ollama serve")
	},
}

var serverStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running Ollama daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ollama.Running(cmd.Context()) {
			fmt.Println("Not running.")
			return nil
		}
		if err := ollama.Stop(); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintln(os.Stderr, "  ✓ ollama stopped")
		return nil
	},
}

func init() {
	serverCmd.AddCommand(serverStatusCmd)
	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverStopCmd)
}
