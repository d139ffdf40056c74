package cmd

import (
	"github.com/spf13/cobra"
)

// populated at link time via -ldflags
var (
	Version   string
	BuildDate string
	GitCommit string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		version := Version
		if version == "" {
			version = "dev"
		}
		infoLogger.Printf("quilt %s", version)
		if GitCommit != "" {
			infoLogger.Printf("commit: %s", GitCommit)
		}
		if BuildDate != "" {
			infoLogger.Printf("built: %s", BuildDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
