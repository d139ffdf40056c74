package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quilt",
	Short: "Quilt versions sparse multidimensional data",
	Long: `Quilt is a versioned store for sparse, axis-indexed numeric data.

Data lives in named quilts spanning shared, growable axes. Writes land
as dense patches bundled into immutable commits; tags name commits and
move forward as new commits arrive. A fetch replays the history behind
a tag, later values winning cell-wise, and returns one dense block over
the requested region.
`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)
	addConfigFlag(rootCmd)
	addLogLevelFlag(rootCmd)
	addStoreFlags(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("store.kind", storeKindLocalFS)
	viper.SetDefault("store.path", ".quilt")
	viper.SetDefault("loglevel", "none")

	if quiltFlags.root.config != "" {
		viper.SetConfigFile(quiltFlags.root.config)
	} else if cfg := os.Getenv("QUILT_CONFIG"); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.quilt")
		viper.AddConfigPath("/etc/quilt")
		viper.SetConfigName("quilt")
	}

	viper.SetEnvPrefix("quilt")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}
