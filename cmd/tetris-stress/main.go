package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Starting tetris stress test...")
	log.Printf("Running simulation for %s (seed %d)...\n", cfg.Duration, cfg.Seed)

	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	report, err := run(ctx, cfg)
	if err != nil {
		exitf("Error: %v", err)
	}

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// run plays games back to back until ctx is done or the game limit is hit.
func run(ctx context.Context, cfg Config) (*Report, error) {
	s, err := session.New(
		tetris.WithSize(cfg.Width, cfg.Height),
		tetris.WithRand(rand.New(rand.NewPCG(cfg.Seed, 0))),
	)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	input := NewRandomInput(rand.New(rand.NewPCG(cfg.Seed, 1)), cfg.ActionRate)

	report := &Report{Config: cfg}
	frames := session.NewTimer("frame")
	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			report.Games = append(report.Games, result(s.Game(), false))
			break Loop
		default:
			input.Feed(s.Commands())

			frameStart := time.Now()
			s.Once(cfg.Frame)
			frames.Record(time.Since(frameStart))

			if !s.Game().GameOver() {
				continue
			}

			report.Games = append(report.Games, result(s.Game(), true))
			if cfg.MaxGames > 0 && len(report.Games) >= cfg.MaxGames {
				break Loop
			}
			s.Reset()
		}
	}

	report.TotalTime = time.Since(startTime)
	report.FrameTime = frames.Snapshot()
	runtime.ReadMemStats(&report.MemStatsEnd)

	stats := s.Stats()
	report.TotalFrames = stats.Frames
	report.Locks = stats.Locks
	report.Rows = stats.Rows
	report.Phases = stats.Phases
	for shape := tetris.Shape(0); shape < tetris.ShapeCount; shape++ {
		report.Shapes = append(report.Shapes, Count{Label: shape.String(), Value: stats.ShapeCount(shape)})
	}
	for rows := 0; rows <= 4; rows++ {
		report.Clears = append(report.Clears, Count{Label: fmt.Sprintf("%d rows", rows), Value: stats.ClearCount(rows)})
	}

	return report, nil
}

func result(g *tetris.Game, finished bool) GameResult {
	return GameResult{
		Score:    g.Score(),
		Rows:     g.ClearedRows(),
		Level:    g.Level(),
		Locks:    g.Locks(),
		Finished: finished,
	}
}

// exitf writes a formatted error message to stderr and exits with code 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
