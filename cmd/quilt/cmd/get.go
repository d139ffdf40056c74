package cmd

import (
	"context"
	"strings"

	"github.com/quiltlabs/quilt/pkg/core"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Resolve a name to the quilt or axis behind it",
	Example: `% quilt get sales
quilt sales over (itm, lct, day)
% quilt get day
axis day [700, 701]`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		catalog, closer, err := openCatalog(ctx)
		if err != nil {
			wrapFatalln("open catalog", err)
			return
		}
		defer closer()

		res := catalog.Lookup(ctx, args[0])
		switch res.Kind {
		case core.LookupQuilt:
			infoLogger.Printf("quilt %s over (%s)", res.Quilt.Name(), strings.Join(res.Quilt.AxisNames(), ", "))
		case core.LookupAxis:
			infoLogger.Printf("axis %s %s", res.Axis.Name, formatLabels(res.Axis.Labels))
		default:
			wrapFatalln("name "+args[0]+" is not registered", nil)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
