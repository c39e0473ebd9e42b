// Command life-run plays Game of Life in the terminal without a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"life-canvas/internal/core"
	"life-canvas/internal/life"
	"life-canvas/internal/metrics"
	"life-canvas/internal/patterns"
	"life-canvas/internal/session"
	"life-canvas/internal/ui"

	"github.com/prometheus/client_golang/prometheus"
)

type options struct {
	rows        int
	cols        int
	generations int
	tps         int
	pattern     string
	random      bool
	seed        int64
	density     float64
	print       bool
	metricsAddr string
	list        bool
	rules       bool
}

func main() {
	var opts options
	flag.IntVar(&opts.rows, "rows", 30, "board rows")
	flag.IntVar(&opts.cols, "cols", 60, "board columns")
	flag.IntVar(&opts.generations, "generations", 100, "generations to run (0 runs until interrupted)")
	flag.IntVar(&opts.tps, "tps", 0, "generations per second (0 runs unpaced)")
	flag.StringVar(&opts.pattern, "pattern", "", "pattern to load")
	flag.BoolVar(&opts.random, "random", false, "randomize the board")
	flag.Int64Var(&opts.seed, "seed", 42, "seed for randomize")
	flag.Float64Var(&opts.density, "density", life.DefaultDensity, "live-cell probability for randomize")
	flag.BoolVar(&opts.print, "print", false, "print the board after every generation")
	flag.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	flag.BoolVar(&opts.list, "list", false, "list pattern names and exit")
	flag.BoolVar(&opts.rules, "rules", false, "print the rules and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	table := patterns.Default()
	if opts.list {
		listPatterns(out, table)
		return nil
	}
	if opts.rules {
		fmt.Fprintln(out, strings.Join(ui.RulesText[:len(ui.RulesText)-1], "\n"))
		return nil
	}
	if opts.rows <= 0 || opts.cols <= 0 {
		return fmt.Errorf("board size %dx%d must be positive", opts.rows, opts.cols)
	}
	if opts.generations < 0 {
		return fmt.Errorf("generations %d must not be negative", opts.generations)
	}

	var sessOpts []session.Option
	if opts.tps > 0 {
		sessOpts = append(sessOpts, session.WithTPS(opts.tps))
	}
	if opts.metricsAddr != "" {
		rec, err := metrics.New(prometheus.NewRegistry())
		if err != nil {
			return err
		}
		sessOpts = append(sessOpts, session.WithObserver(rec))
		go func() {
			log.Printf("metrics endpoint listening on %s/metrics", opts.metricsAddr)
			if err := rec.Serve(ctx, opts.metricsAddr); err != nil {
				log.Printf("metrics: %v", err)
			}
		}()
	}

	engine := life.New(opts.rows, opts.cols, life.WithSeed(opts.seed), life.WithDensity(opts.density))
	sess := session.New(engine, table, 1, sessOpts...)
	switch {
	case opts.pattern != "":
		if !sess.LoadPattern(opts.pattern) {
			return fmt.Errorf("unknown pattern %q (run with -list)", opts.pattern)
		}
	case opts.random:
		sess.Randomize()
	}

	if opts.print {
		printBoard(out, sess)
	}

	onTick := func(st session.Stats) {
		if opts.print {
			printBoard(out, sess)
		}
		if opts.generations > 0 && st.Generation >= opts.generations {
			sess.Stop()
		}
	}

	if opts.generations == 0 && !opts.print && opts.tps <= 0 {
		return errors.New("refusing to run forever unpaced without output; set -generations, -tps or -print")
	}

	sess.Start()
	var err error
	if opts.tps > 0 {
		err = sess.Run(ctx, onTick)
	} else {
		err = sess.RunUnpaced(ctx, onTick)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	st := sess.Stats()
	fmt.Fprintf(out, "generation %d, population %d\n", st.Generation, st.Population)
	return nil
}

func printBoard(out io.Writer, sess *session.Session) {
	snap := sess.Engine().Snapshot()
	fmt.Fprintf(out, "generation %d, population %d\n%s\n", snap.Generation, snap.Population, snap)
}

func listPatterns(out io.Writer, src core.PatternSource) {
	for _, name := range src.Names() {
		p, _ := src.Pattern(name)
		_, _, h, w := p.Bounds()
		fmt.Fprintf(out, "%-18s %3dx%-3d %s\n", name, w, h, p.Description)
	}
}
