package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/arin/ochat/internal/chat"
	"github.com/arin/ochat/internal/config"
	"github.com/arin/ochat/internal/history"
	"github.com/arin/ochat/internal/ollama"
	"github.com/arin/ochat/internal/ui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	client := chat.NewClient(cfg.Endpoint)
	cyan := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	st := client.Status(cmd.Context())
	model := cfg.Model
	if model == "" && len(st.Models) > 0 {
		// No preference saved: pick the first installed model.
		model = st.Models[0]
	}

	host := ollama.Hostname()

	fmt.Fprintln(os.Stderr)
	cyan.Fprintf(os.Stderr, "  ochat — %s\n", host)
	if !st.Running {
		yellow.Fprintln(os.Stderr, "  Ollama is not running. Start it with: ochat server start")
	}
	if model == "" {
		yellow.Fprintln(os.Stderr, "  No model installed. Pull one with: ochat pull llama3")
	} else {
		dim.Fprintf(os.Stderr, "  Model: %s\n", model)
	}
	dim.Fprintf(os.Stderr, "  Type 'exit' to quit.\n\n")

	scanner := bufio.NewScanner(os.Stdin)
	replyPrefix := cyan.Sprintf("  [%s] → ", host)

	for {
		green.Fprint(os.Stderr, "  you → ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" || input == "bye" {
			dim.Fprintf(os.Stderr, "\n  Later! 👋\n\n")
			break
		}

		// One session at a time: the prompt does not come back until
		// this stream reaches a terminal state.
		ch := client.Submit(cmd.Context(), chat.ChatRequest{
			Model:  model,
			Runner: cfg.Runner,
			Prompt: input,
		})
		if ch == nil {
			yellow.Fprintf(os.Stderr, "  No model selected — run: ochat pull <model>\n\n")
			continue
		}

		sp := ui.NewSpinner("Thinking...")
		sp.Start()
		reply, err := ui.RenderStream(os.Stderr, ch, replyPrefix, sp)

		// Failures are already part of the rendered text; just record
		// the outcome.
		_ = history.Save(history.Transcript{
			Model:   model,
			Runner:  cfg.Runner,
			Prompt:  input,
			Reply:   reply,
			Success: err == nil,
		})
	}

	return nil
}
