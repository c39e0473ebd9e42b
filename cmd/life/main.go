//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"life-canvas/internal/app"
	"life-canvas/internal/metrics"
	"life-canvas/internal/patterns"
	"life-canvas/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opts []session.Option
	if cfg.MetricsAddr != "" {
		rec, err := metrics.New(prometheus.DefaultRegisterer)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, session.WithObserver(rec))
		go func() {
			log.Printf("metrics endpoint listening on %s/metrics", cfg.MetricsAddr)
			if err := rec.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Printf("metrics: %v", err)
			}
		}()
	}

	sess, err := cfg.NewSession(patterns.Default(), opts...)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sess)
	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
