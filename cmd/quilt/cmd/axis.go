package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// axisCmd groups commands acting on registry axes
var axisCmd = &cobra.Command{
	Use:   "axis",
	Short: "Commands to manage the axis registry",
	Long: `Commands to manage the axis registry.

An axis is a named, sorted set of integer labels shared by every quilt
spanning it. Axes only ever grow: commits extend them with the labels
their patches introduce.`,
}

var axisCreateCmd = &cobra.Command{
	Use:   "create <name> [label ...]",
	Short: "Create an axis",
	Long:  `Create an axis with an optional initial set of integer labels.`,
	Example: `% quilt axis create day 700 701 702
day (3 labels)`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		labels := make([]int64, 0, len(args)-1)
		for _, arg := range args[1:] {
			label, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				wrapFatalln(fmt.Sprintf("parse label %q", arg), err)
				return
			}
			labels = append(labels, label)
		}

		catalog, closer, err := openCatalog(ctx)
		if err != nil {
			wrapFatalln("open catalog", err)
			return
		}
		defer closer()

		axis, err := catalog.CreateAxis(ctx, args[0], labels)
		if err != nil {
			wrapFatalln("create axis", err)
			return
		}
		infoLogger.Printf("%s (%d labels)", axis.Name, axis.Len())
	},
}

var axisListCmd = &cobra.Command{
	Use:   "list",
	Short: "List axes",
	Long:  `List the registered axes with their current labels.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		catalog, closer, err := openCatalog(ctx)
		if err != nil {
			wrapFatalln("open catalog", err)
			return
		}
		defer closer()

		for _, name := range catalog.ListAxes(ctx) {
			axis, err := catalog.AxisSnapshot(ctx, name)
			if err != nil {
				wrapFatalln("read axis", err)
				return
			}
			infoLogger.Printf("%s , %s", axis.Name, formatLabels(axis.Labels))
		}
	},
}

func formatLabels(labels []int64) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = strconv.FormatInt(l, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func init() {
	axisCmd.AddCommand(axisCreateCmd)
	axisCmd.AddCommand(axisListCmd)
	rootCmd.AddCommand(axisCmd)
}
