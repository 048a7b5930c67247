// Package cli wires the cobra command surface: single-shot translation,
// the interactive loop, and configuration management.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/llmshell/llmshell/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. A positional phrase runs one
// translation cycle; no arguments starts the interactive loop.
func NewRootCmd(opts Options) *cobra.Command {
	var (
		model       string
		temperature float64
		provider    string
		force       bool
		verbose     bool
	)

	root := &cobra.Command{
		Use:   "llmshell [natural language command]",
		Short: "Natural language to system command translator",
		Long:  "LLMShell translates natural language into shell commands, validates them against the host, and executes the one you confirm.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := app.BuildContainer(cmd.Context(), app.Options{
				Provider:    provider,
				Model:       model,
				Temperature: temperature,
				Verbose:     verbose || opts.Verbose,
			})
			if err != nil {
				return err
			}
			container.ShellService.Prompter = NewPrompter(nil, nil)
			container.ShellService.Renderer = NewRenderer(nil, verbose || opts.Verbose)

			if len(args) > 0 {
				return container.ShellService.Process(cmd.Context(), strings.Join(args, " "), force)
			}
			return NewInteractiveLoop(container.ShellService).Run()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&model, "model", "m", "", "LLM model to use for translation (defaults to config)")
	root.Flags().Float64VarP(&temperature, "temperature", "t", -1, "Temperature for LLM generation, 0.0-1.0 (defaults to config)")
	root.Flags().StringVarP(&provider, "provider", "p", "", "LLM provider (openai, deepseek, doubao, qwen; defaults to config)")
	root.Flags().BoolVarP(&force, "force", "f", false, "Execute command without confirmation")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	root.AddCommand(newConfigCommand())
	root.AddCommand(newDoctorCommand())
	return root
}
