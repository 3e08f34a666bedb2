package cli

import "github.com/spf13/cobra"

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the nodekit version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("nodekit", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
