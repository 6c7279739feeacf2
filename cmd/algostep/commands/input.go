package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/algostep/algorithms"
	"github.com/katalvlaran/algostep/builder"
	"github.com/katalvlaran/algostep/config"
	"github.com/katalvlaran/algostep/core"
)

// inputFlags are shared by steps and play.
type inputFlags struct {
	array     string
	graph     string
	graphFile string
	tree      string
	target    int
	size      int
	seed      uint64
	directed  bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.array, "array", "", "comma-separated values for sorting and searching (e.g. 5,3,8,1)")
	fl.StringVar(&f.graph, "graph", "", `graph edges "source,target,weight", separated by ';' or newlines`)
	fl.StringVar(&f.graphFile, "graph-file", "", "read graph edges from a file, one per line")
	fl.BoolVar(&f.directed, "directed", false, "treat graph edges as directed")
	fl.StringVar(&f.tree, "tree", "", "comma-separated values inserted into the tree")
	fl.IntVar(&f.target, "target", 0, "value to search for (default: middle element)")
	fl.IntVar(&f.size, "size", 0, "size of generated input (default from config)")
	fl.Uint64Var(&f.seed, "seed", 0, "seed for generated input (default from config, else time)")
}

// build assembles the Input for id. Data given by flags is used as is;
// whatever the family still lacks is generated with the builder.
func (f *inputFlags) build(cmd *cobra.Command, id algorithms.ID) (algorithms.Input, error) {
	info, err := algorithms.Lookup(id)
	if err != nil {
		return algorithms.Input{}, err
	}
	var in algorithms.Input

	if f.array != "" {
		if in.Array, err = core.ParseValues(f.array); err != nil {
			return in, errors.Wrap(err, "--array")
		}
	}
	if f.tree != "" {
		if in.Tree, err = core.ParseValues(f.tree); err != nil {
			return in, errors.Wrap(err, "--tree")
		}
	}
	if in.Graph, err = f.parseGraph(); err != nil {
		return in, err
	}
	if cmd.Flags().Changed("target") {
		t := f.target
		in.Target = &t
	}

	cfg := getConfig()
	size := cfg.Size(info.Family)
	if cmd.Flags().Changed("size") {
		r := config.Ranges[info.Family]
		if f.size < r.Min || f.size > r.Max {
			return in, errors.WithHintf(
				errors.Newf("--size %d out of range for %s", f.size, info.Family),
				"%s inputs take %d to %d elements", info.Family, r.Min, r.Max)
		}
		size = f.size
	}
	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = f.seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	withRand := builder.WithRand(rand.New(rand.NewSource(seed)))

	generated := false
	switch info.Family {
	case algorithms.FamilySorting, algorithms.FamilySearching:
		if in.Array == nil {
			in.Array, err = builder.RandomArray(size, withRand)
			generated = true
		}
	case algorithms.FamilyGraph:
		if in.Graph == nil {
			in.Graph, err = builder.RandomGraph(size, withRand)
			generated = true
		}
	case algorithms.FamilyTree:
		// Traversals fall back to --array; bst and avl need tree values.
		needTree := id == algorithms.BST || id == algorithms.AVL || in.Array == nil
		if in.Tree == nil && needTree {
			in.Tree, err = builder.RandomTree(size, withRand)
			generated = true
		}
	}
	if err != nil {
		return in, err
	}
	if generated {
		slog.Debug("generated input", "algorithm", string(id), "size", size, "seed", seed)
	}
	return in, nil
}

func (f *inputFlags) parseGraph() (*core.Graph, error) {
	text := strings.ReplaceAll(f.graph, ";", "\n")
	src := "--graph"
	if f.graphFile != "" {
		if f.graph != "" {
			return nil, errors.New("--graph and --graph-file are mutually exclusive")
		}
		data, err := os.ReadFile(f.graphFile)
		if err != nil {
			return nil, errors.Wrap(err, "--graph-file")
		}
		text, src = string(data), f.graphFile
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	g, err := core.ParseEdges(text, core.WithDirected(f.directed))
	if err != nil {
		return nil, errors.Wrap(err, src)
	}
	return g, nil
}

// describeInput renders in the way the flags accept it, so a generated
// run can be repeated.
func describeInput(f algorithms.Family, in algorithms.Input) []string {
	var out []string
	switch f {
	case algorithms.FamilySorting, algorithms.FamilySearching:
		out = append(out, "--array "+core.FormatValues(in.Array))
	case algorithms.FamilyGraph:
		edges := strings.TrimSuffix(core.FormatEdges(in.Graph), "\n")
		out = append(out, fmt.Sprintf("--graph %q", strings.ReplaceAll(edges, "\n", ";")))
	case algorithms.FamilyTree:
		if in.Tree != nil {
			out = append(out, "--tree "+core.FormatValues(in.Tree))
		} else {
			out = append(out, "--array "+core.FormatValues(in.Array))
		}
	}
	if in.Target != nil {
		out = append(out, fmt.Sprintf("--target %d", *in.Target))
	}
	return out
}

func inputHelp(f algorithms.Family, size int) string {
	switch f {
	case algorithms.FamilySearching:
		return fmt.Sprintf("--array, --target (random: %d values)", size)
	case algorithms.FamilyGraph:
		return fmt.Sprintf("--graph or --graph-file (random: %d nodes)", size)
	case algorithms.FamilyTree:
		return fmt.Sprintf("--tree, or --array for traversals (random: %d values)", size)
	default:
		return fmt.Sprintf("--array (random: %d values)", size)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
