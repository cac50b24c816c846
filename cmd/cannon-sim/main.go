package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"cannon/internal/game"
	"cannon/internal/sim"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	width := flag.Int("width", 320, "surface width")
	height := flag.Int("height", 480, "surface height")
	step := flag.Duration("step", 16*time.Millisecond, "simulated time per loop iteration")
	timeout := flag.Duration("timeout", 30*time.Second, "wall-clock limit for the run")
	out := flag.String("png", "", "write the final frame to this PNG file")
	verbose := flag.Bool("v", false, "log loop lifecycle to stderr")
	var overrides kvList
	flag.Var(&overrides, "set", "rule override in key=value form (starting_time, reflection_cap, seed; repeatable)")
	flag.Parse()

	if *verbose {
		game.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	kv := map[string]string{}
	for _, item := range overrides {
		parts := strings.SplitN(item, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring override %q", item)
			continue
		}
		kv[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}

	opts := sim.Options{
		Game:   game.FromMap(kv),
		Width:  *width,
		Height: *height,
		Step:   *step,
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, buf, err := sim.Run(ctx, opts)
	if buf != nil {
		defer buf.Close()
	}
	if err != nil {
		log.Fatal(err)
	}

	s := res.Session
	fmt.Printf("seed=%d reason=%s frames=%d\n", res.Seed, res.Reason, res.Frames)
	fmt.Printf("%s %s\n", res.Result.Title, res.Result.Message())
	fmt.Printf("reflections=%d timeLeft=%.2f target=(%.1f,%.1f)-(%.1f,%.1f) velocity=(%.1f,%.1f)\n",
		s.Reflections, s.TimeLeft, s.Target.Start.X, s.Target.Start.Y, s.Target.End.X, s.Target.End.Y, s.Velocity.X, s.Velocity.Y)

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		if err := buf.WritePNG(f); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", *out)
	}
}
