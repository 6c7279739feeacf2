package commands

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/algorithms"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available algorithms",
	Long: `List every algorithm identifier with its family and complexity.

Examples:
  algostep list
  algostep list --family graph`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		family, _ := cmd.Flags().GetString("family")
		writeList(cmd.OutOrStdout(), family)
		return nil
	},
}

func init() {
	listCmd.Flags().String("family", "", "only list one family (sorting, searching, graph, tree)")
}

func writeList(w io.Writer, family string) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"ID", "Family", "Name", "Time", "Space"})
	for _, in := range algorithms.All() {
		if family != "" && in.Family.String() != family {
			continue
		}
		tbl.Append([]string{
			string(in.ID),
			in.Family.String(),
			in.Name,
			in.TimeComplexity,
			in.SpaceComplexity,
		})
	}
	tbl.Render()
}
