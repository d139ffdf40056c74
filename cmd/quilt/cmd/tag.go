package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Commands to inspect tags",
	Long: `Commands to inspect tags.

A tag names a commit of one quilt and advances as new commits target
it. The default tag "latest" tracks the main line of history.`,
}

var tagListCmd = &cobra.Command{
	Use:   "list <quilt>",
	Short: "List the tags of a quilt",
	Example: `% quilt tag list sales
latest -> 2QOhjfVzrxJCVIdXc3PMUqMZdSo
v1 -> 2QOhiWmGXhzYlU0yAFLv7MDwLdi`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		catalog, closer, err := openCatalog(ctx)
		if err != nil {
			wrapFatalln("open catalog", err)
			return
		}
		defer closer()

		tags, err := catalog.ListTags(ctx, args[0])
		if err != nil {
			wrapFatalln("list tags", err)
			return
		}
		for _, tag := range tags {
			infoLogger.Printf("%s -> %s", tag.Name, tag.CommitID)
		}
	},
}

func init() {
	tagCmd.AddCommand(tagListCmd)
	rootCmd.AddCommand(tagCmd)
}
