package commands

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/algorithms"
)

var infoCmd = &cobra.Command{
	Use:   "info <id>",
	Short: "Show details of one algorithm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := algorithms.Lookup(algorithms.ID(args[0]))
		if err != nil {
			return err
		}
		writeInfo(cmd.OutOrStdout(), in, getConfig().Size(in.Family))
		return nil
	},
}

func writeInfo(w io.Writer, in algorithms.Info, size int) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetColWidth(80)
	tbl.Append([]string{"ID", string(in.ID)})
	tbl.Append([]string{"Name", in.Name})
	tbl.Append([]string{"Family", in.Family.String()})
	tbl.Append([]string{"Description", in.Description})
	tbl.Append([]string{"Time", in.TimeComplexity})
	tbl.Append([]string{"Space", in.SpaceComplexity})
	tbl.Append([]string{"Input", inputHelp(in.Family, size)})
	tbl.Render()
}
