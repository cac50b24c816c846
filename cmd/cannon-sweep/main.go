package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"cannon/internal/game"
	"cannon/internal/sim"
)

type runResult struct {
	seed    int64
	outcome sim.Outcome
	err     error
}

func main() {
	seeds := flag.Int("seeds", 200, "number of seeds to play")
	first := flag.Int64("first-seed", 1, "first seed of the sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 320, "surface width")
	height := flag.Int("height", 480, "surface height")
	step := flag.Duration("step", 16*time.Millisecond, "simulated time per loop iteration")
	reflCap := flag.Int("reflections", game.DefaultConfig().ReflectionCap, "reflections that end a session")
	flag.Parse()

	base := sim.Options{
		Game:   game.DefaultConfig(),
		Width:  *width,
		Height: *height,
		Step:   *step,
	}
	base.Game.ReflectionCap = *reflCap

	fmt.Printf("Sweeping %d seeds (%d workers, %dx%d, step %s)\n", *seeds, *workers, *width, *height, *step)

	jobs := make(chan int64)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				opts := base
				opts.Game.Seed = seed
				ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
				out, buf, err := sim.Run(ctx, opts)
				cancel()
				if buf != nil {
					buf.Close()
				}
				results <- runResult{seed: seed, outcome: out, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *first + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []runResult
	counts := map[sim.Reason]int{}
	for res := range results {
		if res.err != nil {
			log.Printf("seed %d: %v", res.seed, res.err)
			continue
		}
		all = append(all, res)
		counts[res.outcome.Reason]++
	}
	if len(all) == 0 {
		log.Fatal("no completed runs")
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].outcome.Result.TotalElapsed < all[j].outcome.Result.TotalElapsed
	})
	var total float64
	for _, res := range all {
		total += res.outcome.Result.TotalElapsed
	}

	fmt.Printf("\nCompleted %d runs in %s\n", len(all), time.Since(start).Round(time.Millisecond))
	fmt.Printf("lost by reflections: %d\nlost by time:        %d\n", counts[sim.ReasonReflections], counts[sim.ReasonTime])
	fmt.Printf("mean session length: %.2fs\n", total/float64(len(all)))

	fmt.Printf("\nShortest 5 sessions:\n")
	for i := 0; i < len(all) && i < 5; i++ {
		o := all[i].outcome
		fmt.Printf("%2d) seed=%d elapsed=%.2f reflections=%d velocity=(%.1f,%.1f)\n",
			i+1, all[i].seed, o.Result.TotalElapsed, o.Session.Reflections, o.Session.Velocity.X, o.Session.Velocity.Y)
	}
}
