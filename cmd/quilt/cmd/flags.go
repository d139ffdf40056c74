package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	storeKindLocalFS = "localfs"
	storeKindBadger  = "badger"
)

type flagsT struct {
	root struct {
		config   string
		logLevel string
	}
	store struct {
		kind string
		path string
	}
	commit struct {
		patchFiles []string
		message    string
		parentTag  string
		tag        string
	}
	fetch struct {
		tag     string
		selects []string
		output  string
	}
	logTag string
}

var quiltFlags flagsT

func addConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&quiltFlags.root.config, "config", "",
		"Set the config file to use (default: quilt.yaml in ., $HOME/.quilt, /etc/quilt)")
}

func addLogLevelFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&quiltFlags.root.logLevel, "loglevel", "",
		"The logging level: none, info or debug")
	_ = viper.BindPFlag("loglevel", cmd.PersistentFlags().Lookup("loglevel"))
}

func addStoreFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&quiltFlags.store.kind, "store-kind", "",
		"The archive backend: localfs or badger")
	cmd.PersistentFlags().StringVar(&quiltFlags.store.path, "store", "",
		"The directory holding the archive")
	_ = viper.BindPFlag("store.kind", cmd.PersistentFlags().Lookup("store-kind"))
	_ = viper.BindPFlag("store.path", cmd.PersistentFlags().Lookup("store"))
}

func addCommitFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&quiltFlags.commit.patchFiles, "file", "f", nil,
		"A patch file to include, repeatable; patches apply in order")
	cmd.Flags().StringVarP(&quiltFlags.commit.message, "message", "m", "",
		"The commit message")
	cmd.Flags().StringVar(&quiltFlags.commit.parentTag, "parent-tag", "",
		"The tag naming the parent commit (default \"latest\")")
	cmd.Flags().StringVar(&quiltFlags.commit.tag, "tag", "",
		"The tag to advance onto the new commit (default \"latest\")")
}

func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&quiltFlags.fetch.tag, "tag", "",
		"The tag whose history to reconcile (default \"latest\")")
	// StringArray, not StringSlice: label lists contain commas
	cmd.Flags().StringArrayVar(&quiltFlags.fetch.selects, "select", nil,
		"A window on one axis, repeatable: axis=1,2,3 or axis=2..5 or axis=all")
	cmd.Flags().StringVarP(&quiltFlags.fetch.output, "output", "o", "",
		"Write the result to this file instead of stdout")
}

func addLogTagFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&quiltFlags.logTag, "tag", "",
		"The tag whose ancestry to list (default \"latest\")")
}
