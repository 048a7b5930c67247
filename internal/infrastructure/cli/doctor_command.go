package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llmshell/llmshell/internal/infrastructure/config"
	"github.com/llmshell/llmshell/internal/infrastructure/validator"
)

// newDoctorCommand checks that the environment can run the pipeline:
// loadable config, a usable provider credential, and a resolvable shell.
func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and environment health",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			healthy := true

			loader := config.NewFileLoader("")
			cfg, err := loader.Load(cmd.Context())
			if err != nil {
				fmt.Fprintf(out, "[FAIL] config: %v\n", err)
				return fmt.Errorf("configuration unusable")
			}
			fmt.Fprintf(out, "[ OK ] config: %s\n", loader.Path())

			provider, ok := cfg.ActiveProvider()
			switch {
			case !ok:
				fmt.Fprintf(out, "[FAIL] provider: %q not declared in config\n", cfg.Provider)
				healthy = false
			case provider.Credential() == "":
				fmt.Fprintf(out, "[WARN] provider: %s has no API key, translation will use the offline fallback table\n", provider.Name)
			default:
				fmt.Fprintf(out, "[ OK ] provider: %s (%s)\n", provider.Name, provider.Model)
			}

			v := validator.New()
			shell := os.Getenv("SHELL")
			if shell == "" {
				shell = "/bin/sh"
			}
			if v.IsExecutable(shell) {
				fmt.Fprintf(out, "[ OK ] shell: %s\n", shell)
			} else {
				fmt.Fprintf(out, "[FAIL] shell: %s is not executable\n", shell)
				healthy = false
			}

			if !healthy {
				return fmt.Errorf("environment checks failed")
			}
			return nil
		},
	}
}
