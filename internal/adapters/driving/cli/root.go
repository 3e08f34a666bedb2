package cli

import (
	"github.com/spf13/cobra"

	"github.com/flowline-labs/nodekit/internal/core/ports/driving"
	"github.com/flowline-labs/nodekit/internal/logger"
)

var (
	// Version is set by goreleaser ldflags.
	version = "dev"

	// Verbose enables debug logging.
	verbose bool

	// credentialManager is the injected static-credential store.
	credentialManager driving.CredentialManager
)

// Services holds configuration for CLI commands.
type Services struct {
	Credentials driving.CredentialManager
}

// SetServices injects service implementations for CLI commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	credentialManager = s.Credentials
}

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nodekit",
	Short: "Credential resolution and request shaping for workflow nodes",
	Long: `Nodekit resolves dynamic credentials from workflow node parameters and
applies them to outbound HTTP request descriptors.

Use it to manage the static credential store and to dry-run dynamic
credential resolution against a parameter file.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose debug output")

	// Use PersistentPreRunE to set verbose mode before any command executes
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return nil
	}
}
