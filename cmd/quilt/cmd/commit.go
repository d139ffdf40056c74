package cmd

import (
	"context"
	"fmt"

	"github.com/quiltlabs/quilt/pkg/core"
	"github.com/quiltlabs/quilt/pkg/tensor"
	"github.com/spf13/cobra"
)

var commitCmd = &cobra.Command{
	Use:   "commit <quilt>",
	Short: "Commit patches to a quilt",
	Long: `Commit one or more patch files to a quilt as a single atomic commit.

Patches apply in file order, later files winning on overlap. Axes grow
to cover any labels the patches introduce. The target tag advances onto
the new commit once everything is durable.`,
	Example: `% quilt commit sales -f q3.yaml -m "Q3 restatement" --parent-tag v1 --tag v2
2QOhjfVzrxJCVIdXc3PMUqMZdSo`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		if len(quiltFlags.commit.patchFiles) == 0 {
			wrapFatalln("at least one --file is required", nil)
			return
		}
		patches := make([]*tensor.Patch, 0, len(quiltFlags.commit.patchFiles))
		for _, path := range quiltFlags.commit.patchFiles {
			p, err := readPatchFile(path)
			if err != nil {
				wrapFatalln(fmt.Sprintf("read patch %s", path), err)
				return
			}
			patches = append(patches, p)
		}

		catalog, closer, err := openCatalog(ctx)
		if err != nil {
			wrapFatalln("open catalog", err)
			return
		}
		defer closer()

		opts := []core.CommitOption{core.Message(quiltFlags.commit.message)}
		if quiltFlags.commit.parentTag != "" {
			opts = append(opts, core.ParentTag(quiltFlags.commit.parentTag))
		}
		if quiltFlags.commit.tag != "" {
			opts = append(opts, core.NewTag(quiltFlags.commit.tag))
		}
		id, err := catalog.Commit(ctx, args[0], patches, opts...)
		if err != nil {
			wrapFatalln("commit", err)
			return
		}
		infoLogger.Println(id)
	},
}

func init() {
	addCommitFlags(commitCmd)
	rootCmd.AddCommand(commitCmd)
}
