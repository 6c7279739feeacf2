package algorithms_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"

	"github.com/katalvlaran/algostep/algorithms"
	"github.com/katalvlaran/algostep/core"
)

// TestRunLogs replays the golden step logs under testdata/.
//
//	run <id> [target=<n>] [array] [desc]
//	<values, or graph edge lines>
//
// The input block feeds the family's input: values for sorting and
// searching, edge lines for graphs, tree values for trees. With "array"
// a tree algorithm receives the values as Input.Array instead.
func TestRunLogs(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, td *datadriven.TestData) string {
			switch td.Cmd {
			case "run":
				return runCmd(t, td)
			default:
				return fmt.Sprintf("unknown command: %s", td.Cmd)
			}
		})
	})
}

func runCmd(t *testing.T, td *datadriven.TestData) string {
	if len(td.CmdArgs) == 0 {
		td.Fatalf(t, "run needs an algorithm id")
	}
	id := algorithms.ID(td.CmdArgs[0].Key)

	var in algorithms.Input
	if td.HasArg("target") {
		var v int
		td.ScanArgs(t, "target", &v)
		in.Target = &v
	}
	if text := strings.TrimSpace(td.Input); text != "" {
		switch algorithms.FamilyOf(id) {
		case algorithms.FamilyGraph:
			g, err := core.ParseEdges(text)
			if err != nil {
				return "error: " + err.Error()
			}
			in.Graph = g
		default:
			vals, err := core.ParseValues(text)
			if err != nil {
				return "error: " + err.Error()
			}
			if algorithms.FamilyOf(id) == algorithms.FamilyTree && !td.HasArg("array") {
				in.Tree = vals
			} else {
				in.Array = vals
			}
		}
	}

	res, err := algorithms.Run(context.Background(), id, in, nil)
	if err != nil {
		return "error: " + err.Error()
	}
	var b strings.Builder
	for _, s := range res.Log.Steps() {
		b.WriteString(s.String())
		if td.HasArg("desc") {
			b.WriteString(" | ")
			b.WriteString(s.Description())
		}
		b.WriteByte('\n')
	}
	if algorithms.FamilyOf(id) == algorithms.FamilySorting {
		fmt.Fprintf(&b, "final: %v\n", res.Array)
	}
	return b.String()
}
