package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Global configuration
	globalConfig *config.Config
	configErr    error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "algostep",
	Short: "Step-by-step algorithm visualizer",
	Long: `algostep runs classic algorithms and records every comparison, swap,
visit and rotation they make, then replays the log in the terminal.

Families:
  - sorting:   bubble, quick, merge, insertion, selection, heap
  - searching: binary, linear
  - graph:     bfs, dfs, dijkstra, prim, kruskal
  - tree:      bst, avl, inorder, preorder, postorder

Examples:
  # Watch quicksort on a random array of the configured size
  algostep play quick

  # Dump the Dijkstra log for a small graph as YAML
  algostep steps dijkstra --graph "0,1,4;1,2,3;2,0,5" -o yaml

  # Reproducible random input
  algostep steps heap --seed 42 --size 10 --fingerprint
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command returns the root cobra command for mounting into a parent CLI.
func Command() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// An interrupt cancels the command context, which stops a running playback.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "", "", "config file (default is ~/.algostep/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(stepsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path, _ = config.DefaultPath()
	}
	globalConfig, configErr = config.Load(path)
	if configErr != nil {
		// Keep going on defaults so list, info and config still work.
		fmt.Fprintf(os.Stderr, "Warning: config: %v\n", configErr)
		globalConfig = config.Default()
		globalConfig.SetPath(path)
	}

	logLevel := globalConfig.Level()
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

// getConfig returns the global configuration
func getConfig() *config.Config {
	if globalConfig == nil {
		globalConfig = config.Default()
	}
	return globalConfig
}
