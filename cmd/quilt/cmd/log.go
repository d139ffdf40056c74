package cmd

import (
	"context"

	"github.com/quiltlabs/quilt/pkg/core"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log <quilt>",
	Short: "List the commits behind a tag",
	Long:  `List the commits reachable from a tag of a quilt, oldest first.`,
	Example: `% quilt log sales --tag v2
2QOhiWmGXhzYlU0yAFLv7MDwLdi , 1 patches , initial load , 2026-08-30 14:01:18 +0000 UTC`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		catalog, closer, err := openCatalog(ctx)
		if err != nil {
			wrapFatalln("open catalog", err)
			return
		}
		defer closer()

		opts := []core.FetchOption{}
		if quiltFlags.logTag != "" {
			opts = append(opts, core.Tag(quiltFlags.logTag))
		}
		chain, err := catalog.History(ctx, args[0], opts...)
		if err != nil {
			wrapFatalln("read history", err)
			return
		}
		for _, desc := range chain {
			infoLogger.Printf("%s , %d patches , %s , %s", desc.ID, desc.PatchCount, desc.Message, desc.Timestamp)
		}
	},
}

func init() {
	addLogTagFlag(logCmd)
	rootCmd.AddCommand(logCmd)
}
