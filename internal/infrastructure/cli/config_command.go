package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/llmshell/llmshell/internal/domain"
	"github.com/llmshell/llmshell/internal/infrastructure/config"
)

const (
	envKeyEditor  = "EDITOR"
	defaultEditor = "nano"
)

var providerNames = []string{"openai", "deepseek", "doubao", "qwen"}

// newConfigCommand creates the config command group.
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd)
		},
	}

	configCmd.AddCommand(
		newConfigShowCommand(),
		newConfigEditCommand(),
		newConfigSetCommand(),
		newConfigGetCommand(),
		newConfigProviderCommand(),
		newConfigAPIKeyCommand(),
		newConfigListProvidersCommand(),
		newConfigDiffCommand(),
	)

	return configCmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd)
		},
	}
}

func showConfiguration(cmd *cobra.Command) error {
	loader := config.NewFileLoader("")
	cfg, err := loader.Load(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Configuration file: %s\n", loader.Path())
	fmt.Fprintf(out, "Current LLM provider: %s\n\n", cfg.Provider)

	raw, err := yaml.Marshal(maskAPIKeys(cfg))
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(raw))
	return nil
}

// maskAPIKeys hides credentials before display.
func maskAPIKeys(cfg domain.Config) domain.Config {
	masked := cfg
	masked.Providers = append([]domain.ProviderSettings(nil), cfg.Providers...)
	for i, p := range masked.Providers {
		if p.APIKey == "" {
			masked.Providers[i].APIKey = "(not set)"
			continue
		}
		n := len(p.APIKey)
		if n > 8 {
			n = 8
		}
		masked.Providers[i].APIKey = strings.Repeat("*", n) + "..."
	}
	return masked
}

func newConfigEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration file in $EDITOR",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewFileLoader("")
			if _, err := loader.Load(cmd.Context()); err != nil {
				return err
			}

			editor := os.Getenv(envKeyEditor)
			if editor == "" {
				editor = defaultEditor
			}
			edit := exec.Command(editor, loader.Path())
			edit.Stdin = os.Stdin
			edit.Stdout = os.Stdout
			edit.Stderr = os.Stderr
			if err := edit.Run(); err != nil {
				return fmt.Errorf("edit config: %w", err)
			}

			if _, err := loader.Load(cmd.Context()); err != nil {
				return fmt.Errorf("configuration invalid after edit: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration reloaded.")
			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value (value accepts YAML syntax)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := strings.Join(args[1:], " ")
			if err := config.NewFileLoader("").Set(key, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.NewFileLoader("").Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", args[0], value)
			return nil
		},
	}
}

func newConfigProviderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "provider <name>",
		Short: "Set the LLM provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[0])
			if !isKnownProvider(name) {
				return fmt.Errorf("invalid provider %q, must be one of: %s", args[0], strings.Join(providerNames, ", "))
			}
			if err := config.NewFileLoader("").Set("provider", name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set LLM provider to: %s\n", name)
			return nil
		},
	}
}

func newConfigAPIKeyCommand() *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "api-key <key>",
		Short: "Set the API key for an LLM provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewFileLoader("")
			cfg, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}

			target := provider
			if target == "" {
				target = cfg.Provider
			}
			if !isKnownProvider(target) {
				return fmt.Errorf("invalid provider %q, must be one of: %s", target, strings.Join(providerNames, ", "))
			}

			for i := range cfg.Providers {
				if strings.EqualFold(cfg.Providers[i].Name, target) {
					cfg.Providers[i].APIKey = args[0]
					if err := loader.Save(cfg); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Set API key for %s\n", target)
					return nil
				}
			}
			return fmt.Errorf("provider %s not declared in config", target)
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "", "Provider name (defaults to current)")
	return cmd
}

func newConfigListProvidersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-providers",
		Short: "List available LLM providers and their status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewFileLoader("").Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Current provider: %s\n\n", cfg.Provider)
			for _, p := range cfg.Providers {
				status := "Not configured"
				if p.Credential() != "" {
					status = "Configured"
				}
				fmt.Fprintf(out, "%s: %s\n", titleCase(p.Name), status)
				fmt.Fprintf(out, "  Model: %s\n", p.Model)
				if p.APIKey != "" {
					n := len(p.APIKey)
					if n > 8 {
						n = 8
					}
					fmt.Fprintf(out, "  API Key: %s...\n", strings.Repeat("*", n))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func newConfigDiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show differences from the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewFileLoader("").Load(cmd.Context())
			if err != nil {
				return err
			}

			diff := cmp.Diff(config.Defaults(), cfg)
			if diff == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No differences from default configuration.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), diff)
			return nil
		},
	}
}

func titleCase(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func isKnownProvider(name string) bool {
	for _, known := range providerNames {
		if name == strings.ToLower(known) {
			return true
		}
	}
	return false
}
