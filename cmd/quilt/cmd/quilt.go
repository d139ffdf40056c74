package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

// quiltCmd groups commands acting on quilts
var quiltCmd = &cobra.Command{
	Use:   "quilt",
	Short: "Commands to manage quilts",
	Long: `Commands to manage quilts.

A quilt is a named dataset over a fixed, ordered list of registry axes.
Its contents arrive as patches bundled into commits.`,
}

var quiltCreateCmd = &cobra.Command{
	Use:   "create <name> <axis> [axis ...]",
	Short: "Create a quilt",
	Long:  `Create a quilt spanning previously created axes, in the given dimension order.`,
	Example: `% quilt quilt create sales itm lct day`,
	Args:    cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		catalog, closer, err := openCatalog(ctx)
		if err != nil {
			wrapFatalln("open catalog", err)
			return
		}
		defer closer()

		if err := catalog.CreateQuilt(ctx, args[0], args[1:]); err != nil {
			wrapFatalln("create quilt", err)
			return
		}
		infoLogger.Printf("%s over (%s)", args[0], strings.Join(args[1:], ", "))
	},
}

var quiltListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quilts",
	Long:  `List quilts with their axes and creation times.`,
	Example: `% quilt quilt list
sales , (itm, lct, day) , 2026-08-30 14:01:18 +0000 UTC`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		catalog, closer, err := openCatalog(ctx)
		if err != nil {
			wrapFatalln("open catalog", err)
			return
		}
		defer closer()

		for _, desc := range catalog.ListQuilts(ctx) {
			infoLogger.Printf("%s , (%s) , %s", desc.Name, strings.Join(desc.Axes, ", "), desc.Timestamp)
		}
	},
}

func init() {
	quiltCmd.AddCommand(quiltCreateCmd)
	quiltCmd.AddCommand(quiltListCmd)
	rootCmd.AddCommand(quiltCmd)
}
