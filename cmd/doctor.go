package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/arin/ochat/internal/chat"
	"github.com/arin/ochat/internal/config"
	"github.com/arin/ochat/internal/ollama"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system health and configuration",
	Long: `Run a health check on your ochat setup. Verifies Ollama
connectivity, gateway reachability, model availability, and
configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)
		yellow := color.New(color.FgYellow)
		dim := color.New(color.FgHiBlack)
		cyan := color.New(color.FgCyan, color.Bold)

		cyan.Fprintf(os.Stderr, "\n  🩺 ochat doctor\n\n")

		pass, fail, warn := 0, 0, 0

		check := func(name string, fn func() (string, error)) {
			detail, err := fn()
			if err != nil {
				if strings.HasPrefix(err.Error(), "warn:") {
					yellow.Fprintf(os.Stderr, "  ⚠ %s\n", name)
					dim.Fprintf(os.Stderr, "    %s\n", strings.TrimPrefix(err.Error(), "warn:"))
					warn++
				} else {
					red.Fprintf(os.Stderr, "  ✗ %s\n", name)
					dim.Fprintf(os.Stderr, "    %s\n", err.Error())
					fail++
				}
			} else {
				green.Fprintf(os.Stderr, "  ✓ %s", name)
				if detail != "" {
					dim.Fprintf(os.Stderr, " — %s", detail)
				}
				fmt.Fprintln(os.Stderr)
				pass++
			}
		}

		cfg, _ := config.Load()
		client := chat.NewClient(cfg.Endpoint)

		// 1. Binary
		check("ochat binary installed", func() (string, error) {
			path, err := os.Executable()
			if err != nil {
				return "", fmt.Errorf("could not find ochat binary")
			}
			return path, nil
		})

		// 2. Ollama installed
		check("Ollama installed", func() (string, error) {
			out, err := exec.Command("ollama", "--version").CombinedOutput()
			if err != nil {
				return "", fmt.Errorf("ollama not found — install from https://ollama.com")
			}
			return strings.TrimSpace(string(out)), nil
		})

		// 3. Ollama daemon running
		check("Ollama daemon running", func() (string, error) {
			if !ollama.Running(cmd.Context()) {
				return "", fmt.Errorf("not running — start with: ochat server start")
			}
			return "localhost:11434", nil
		})

		// 4. Gateway reachable
		st := client.Status(cmd.Context())
		check("Gateway reachable", func() (string, error) {
			if !st.Running {
				return "", fmt.Errorf("warn:no gateway at %s — chat needs it", cfg.Endpoint)
			}
			return cfg.Endpoint, nil
		})

		// 5. Model available
		check("Model available", func() (string, error) {
			models := st.Models
			if len(models) == 0 {
				var err error
				models, err = ollama.Models(cmd.Context())
				if err != nil {
					return "", fmt.Errorf("could not list models")
				}
			}
			if len(models) == 0 {
				return "", fmt.Errorf("no models installed — run: ochat pull llama3")
			}
			if cfg.Model == "" {
				return fmt.Sprintf("auto-select (%s)", models[0]), nil
			}
			for _, m := range models {
				if m == cfg.Model {
					return cfg.Model, nil
				}
			}
			return "", fmt.Errorf("model %q not installed — run: ochat pull %s", cfg.Model, cfg.Model)
		})

		// 6. Config directory
		check("Config directory", func() (string, error) {
			dir := config.Dir()
			info, err := os.Stat(dir)
			if err != nil {
				return "", fmt.Errorf("warn:~/.ochat not found — will be created on first use")
			}
			if !info.IsDir() {
				return "", fmt.Errorf("~/.ochat exists but is not a directory")
			}
			return dir, nil
		})

		// 7. OS and arch
		check("System info", func() (string, error) {
			return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH), nil
		})

		// Summary
		fmt.Fprintln(os.Stderr)
		total := pass + fail + warn
		if fail == 0 && warn == 0 {
			green.Fprintf(os.Stderr, "  All %d checks passed. You're good to go.\n\n", total)
		} else if fail == 0 {
			yellow.Fprintf(os.Stderr, "  %d passed, %d warnings. Everything works, but some things could be better.\n\n", pass, warn)
		} else {
			red.Fprintf(os.Stderr, "  %d passed, %d failed, %d warnings. Fix the failures above.\n\n", pass, fail, warn)
		}

		return nil
	},
}
