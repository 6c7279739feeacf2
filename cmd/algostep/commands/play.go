package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/algorithms"
	"github.com/katalvlaran/algostep/player"
	"github.com/katalvlaran/algostep/render"
	"github.com/katalvlaran/algostep/step"
)

var playInput inputFlags

var playCmd = &cobra.Command{
	Use:   "play <id>",
	Short: "Replay an algorithm step by step in the terminal",
	Long: `Generate the step log of an algorithm and replay it at the configured
speed, drawing the array, graph or tree state after every step.

With --interactive, single-letter commands are read from stdin, one per
line:
  p  pause          r  resume
  n  next step      b  previous step
  +  faster         -  slower
  x  reset          q  quit

After the run completes, n and b keep working until q or end of input.

Examples:
  algostep play insertion --array 5,3,8,1 --speed 80
  algostep play dijkstra --size 6 --interactive
  algostep play avl --tree 10,20,30,40,50,25 --stats`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playInput.register(playCmd)
	fl := playCmd.Flags()
	fl.Int("speed", 0, "playback speed 1-100 (default from config)")
	fl.Int("width", 40, "maximum bar width in columns")
	fl.BoolP("interactive", "i", false, "read playback commands from stdin")
	fl.Bool("stats", false, "print player metrics when done")
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := algorithms.ID(args[0])
	in, err := playInput.build(cmd, id)
	if err != nil {
		return err
	}
	cfg := getConfig()
	speed := cfg.Speed
	if cmd.Flags().Changed("speed") {
		speed, _ = cmd.Flags().GetInt("speed")
		if speed < player.MinSpeed || speed > player.MaxSpeed {
			return errors.Wrapf(player.ErrInvalidSpeed, "--speed %d", speed)
		}
	}
	width, _ := cmd.Flags().GetInt("width")
	interactive, _ := cmd.Flags().GetBool("interactive")
	stats, _ := cmd.Flags().GetBool("stats")

	out := cmd.OutOrStdout()
	reg := prometheus.NewRegistry()
	term := render.NewTerminal(out, cfg.Theme, width)
	var ops atomic.Int64
	p := player.New(term,
		player.WithSpeed(speed),
		player.WithLogger(slog.Default()),
		player.WithMetrics(player.NewMetrics(reg)),
		player.WithStepHook(func(int, step.Step) { ops.Add(1) }),
	)
	if err := p.SetInput(in); err != nil {
		return err
	}
	slog.Debug("input", "algorithm", string(id), "flags", strings.Join(describeInput(algorithms.FamilyOf(id), in), " "))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	done := make(chan struct{})
	if interactive {
		go func() {
			defer close(done)
			control(ctx, cmd.InOrStdin(), cmd.ErrOrStderr(), p, cancel)
		}()
	} else {
		close(done)
	}

	start := time.Now()
	err = p.Run(ctx, id)
	elapsed := time.Since(start)
	switch {
	case errors.Is(err, player.ErrInterrupted):
		fmt.Fprintln(out, "reset")
	case err != nil && ctx.Err() != nil:
		fmt.Fprintln(out, "stopped")
	case err != nil:
		return err
	default:
		fmt.Fprintln(out, term.Summary())
		fmt.Fprintf(out, "operations: %d  time: %.1fs\n", ops.Load(), elapsed.Seconds())
	}

	if interactive {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}
	if stats {
		return writeStats(out, reg)
	}
	return nil
}

// control applies one playback command per input line until q, end of
// input or ctx is done.
func control(ctx context.Context, r io.Reader, errOut io.Writer, p *player.Player, quit func()) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		var err error
		switch strings.TrimSpace(sc.Text()) {
		case "p":
			err = p.Pause()
		case "r":
			err = p.Resume()
		case "n":
			err = p.StepForward()
		case "b":
			err = p.StepBackward()
		case "+":
			err = p.SetSpeed(min(p.Status().Speed+10, player.MaxSpeed))
		case "-":
			err = p.SetSpeed(max(p.Status().Speed-10, player.MinSpeed))
		case "x":
			err = p.Reset()
		case "q":
			_ = p.Reset()
			quit()
			return
		case "":
			continue
		default:
			err = errors.Newf("unknown command %q (p r n b + - x q)", sc.Text())
		}
		if err != nil {
			fmt.Fprintf(errOut, "%v\n", err)
			continue
		}
		fmt.Fprintf(errOut, "%s\n", p)
	}
}

func writeStats(w io.Writer, reg prometheus.Gatherer) error {
	mfs, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Metric", "Labels", "Value"})
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			sort.Strings(labels)
			var value string
			switch {
			case m.GetCounter() != nil:
				value = strconv.FormatFloat(m.GetCounter().GetValue(), 'f', -1, 64)
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				value = fmt.Sprintf("n=%d sum=%.6fs", h.GetSampleCount(), h.GetSampleSum())
			}
			tbl.Append([]string{mf.GetName(), strings.Join(labels, " "), value})
		}
	}
	tbl.Render()
	return nil
}
