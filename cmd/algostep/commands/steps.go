package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/algorithms"
	"github.com/katalvlaran/algostep/render"
	"github.com/katalvlaran/algostep/step"
)

var stepsInput inputFlags

var stepsCmd = &cobra.Command{
	Use:   "steps <id>",
	Short: "Generate the step log of an algorithm",
	Long: `Run an algorithm and print every step it records.

Inputs not given on the command line are generated from the seed and the
configured size for the algorithm's family.

Output formats:
  text     one line per step (default)
  yaml     a list of step records
  json     a list of step records
  msgpack  binary msgpack array of step records

Examples:
  algostep steps bubble --array 5,3,8,1
  algostep steps binary --array 1,3,5,8 --target 5 -o json
  algostep steps kruskal --graph "a,b,1;b,c,2;a,c,3" --summary
  algostep steps quick --seed 7 --size 20 --plot`,
	Args: cobra.ExactArgs(1),
	RunE: runSteps,
}

func init() {
	stepsInput.register(stepsCmd)
	fl := stepsCmd.Flags()
	fl.StringP("output", "o", "text", "output format: text, yaml, json or msgpack")
	fl.StringSlice("kind", nil, "only print steps of these kinds (text output)")
	fl.Bool("fingerprint", false, "print the BLAKE3 fingerprint of the log")
	fl.Bool("summary", false, "print a table of step counts per kind")
	fl.Bool("plot", false, "plot the final array")
}

func runSteps(cmd *cobra.Command, args []string) error {
	id := algorithms.ID(args[0])
	in, err := stepsInput.build(cmd, id)
	if err != nil {
		return err
	}
	res, err := algorithms.Run(cmd.Context(), id, in, nil)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("output")
	kinds, _ := cmd.Flags().GetStringSlice("kind")
	filter, err := kindFilter(kinds)
	if err != nil {
		return err
	}
	if err := writeLog(w, format, id, in, res.Log, filter); err != nil {
		return err
	}

	if ok, _ := cmd.Flags().GetBool("summary"); ok {
		writeSummary(w, res.Log)
	}
	if ok, _ := cmd.Flags().GetBool("fingerprint"); ok {
		fp, err := res.Log.Fingerprint()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "fingerprint: %s\n", fp)
	}
	if ok, _ := cmd.Flags().GetBool("plot"); ok && len(res.Array) > 0 {
		fmt.Fprintln(w, render.Plot(res.Array, 10, "final array"))
	}
	return nil
}

func kindFilter(names []string) (map[step.Kind]bool, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make(map[step.Kind]bool, len(names))
	for _, n := range names {
		k, err := step.ParseKind(strings.TrimSpace(n))
		if err != nil {
			return nil, errors.Wrap(err, "--kind")
		}
		out[k] = true
	}
	return out, nil
}

func writeLog(w io.Writer, format string, id algorithms.ID, in algorithms.Input, log *step.Log, filter map[step.Kind]bool) error {
	switch format {
	case "text", "":
		fmt.Fprintf(w, "# %s %s (%d steps)\n", id, strings.Join(describeInput(algorithms.FamilyOf(id), in), " "), log.Len())
		for i, s := range log.Steps() {
			if filter != nil && !filter[s.Kind()] {
				continue
			}
			fmt.Fprintf(w, "%4d  %-32s %s\n", i+1, fmt.Sprint(s), s.Description())
		}
		return nil
	case "yaml":
		data, err := yaml.Marshal(log.Records())
		if err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(log.Records())
	case "msgpack":
		data, err := log.MarshalMsgpack()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return errors.WithHint(
			errors.Newf("unknown output format %q", format),
			"use one of text, yaml, json, msgpack")
	}
}

func writeSummary(w io.Writer, log *step.Log) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Kind", "Count"})
	for _, k := range log.Kinds() {
		tbl.Append([]string{k.String(), strconv.Itoa(log.Count(k))})
	}
	tbl.SetFooter([]string{"total", strconv.Itoa(log.Len())})
	tbl.Render()
}
