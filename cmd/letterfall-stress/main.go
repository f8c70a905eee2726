package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/letterfall/game"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	width := flag.Int("width", game.DefaultWidth, "Board width in columns.")
	height := flag.Int("height", game.DefaultHeight, "Board height in rows.")
	threshold := flag.Int("threshold", game.DefaultMatchThreshold, "Minimum run length that clears.")
	letters := flag.Int("letters", len(game.DefaultAlphabet), "Alphabet size; fewer letters cascade more.")
	seed := flag.Uint64("seed", 1, "PRNG seed for letters and drop columns.")
	flag.Parse()

	log.Println("Starting drop stress test...")

	alphabet := make([]game.Symbol, *letters)
	for i := range alphabet {
		alphabet[i] = game.Symbol('A' + i)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	newSession := func() *game.Session {
		return game.NewSession(game.Config{
			Width:          *width,
			Height:         *height,
			MatchThreshold: *threshold,
			Letters:        game.NewRandomSourceFrom(rng, alphabet),
		})
	}
	session := newSession()

	report := &Report{
		Duration:  *duration,
		Width:     *width,
		Height:    *height,
		Threshold: *threshold,
		Letters:   *letters,
		Seed:      *seed,
		DropTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Dropping letters for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	fullStreak := 0

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			column := rng.IntN(*width)

			dropStart := time.Now()
			res, err := session.Drop(column)
			dropDuration := time.Since(dropStart)
			if err != nil {
				log.Fatalf("drop failed: %v", err)
			}

			report.DropTime.Samples = append(report.DropTime.Samples, dropDuration)
			report.TotalDrops++
			if !res.Placed {
				report.FullColumnDrops++
				fullStreak++
				// A long streak of full columns means the board is wedged;
				// start a fresh session and keep measuring.
				if fullStreak >= *width*2 {
					session = newSession()
					report.BoardResets++
					fullStreak = 0
				}
				continue
			}
			fullStreak = 0

			report.TotalDestroyed += int64(res.Destroyed)
			report.TotalScore += int64(res.ScoreDelta)
			if res.Depth > 0 {
				report.ClearingDrops++
			}
			if res.Depth > 1 {
				report.CascadeDrops++
			}
			if res.Depth > report.MaxDepth {
				report.MaxDepth = res.Depth
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.DropTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Stress run finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
