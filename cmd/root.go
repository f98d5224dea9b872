package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ochat",
	Short: "A streaming terminal chat for your local Ollama",
	Long: `ochat is a terminal chat client for a locally running Ollama
instance. Replies stream in token by token as the model generates them.

Examples:
  ochat                 start a chat session
  ochat models          list installed models
  ochat pull llama3     download a model
  ochat server start    start the Ollama daemon`,
	RunE:          runChat,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(doctorCmd)
}

// Execute is the entry point called from main.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion wires the build-time version into the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}
