package cmd

import (
	"context"
	"os"

	"github.com/quiltlabs/quilt/pkg/core"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <quilt>",
	Short: "Reconcile a quilt into one dense patch",
	Long: `Reconcile the history behind a tag into one dense patch and print it
as a patch file.

Unselected axes default to their full current extent. Cells no commit
ever wrote are zero.`,
	Example: `% quilt fetch sales --tag v2 --select lct=2,3 --select day=all -o window.yaml`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		selections, err := parseSelections(quiltFlags.fetch.selects)
		if err != nil {
			wrapFatalln("parse selections", err)
			return
		}

		catalog, closer, err := openCatalog(ctx)
		if err != nil {
			wrapFatalln("open catalog", err)
			return
		}
		defer closer()

		opts := []core.FetchOption{}
		if quiltFlags.fetch.tag != "" {
			opts = append(opts, core.Tag(quiltFlags.fetch.tag))
		}
		result, err := catalog.Fetch(ctx, args[0], selections, opts...)
		if err != nil {
			wrapFatalln("fetch", err)
			return
		}

		out := os.Stdout
		if quiltFlags.fetch.output != "" {
			f, err := os.Create(quiltFlags.fetch.output)
			if err != nil {
				wrapFatalln("create output file", err)
				return
			}
			defer f.Close()
			out = f
		}
		if err := writePatchFile(out, result); err != nil {
			wrapFatalln("write result", err)
			return
		}
	},
}

func init() {
	addFetchFlags(fetchCmd)
	rootCmd.AddCommand(fetchCmd)
}
