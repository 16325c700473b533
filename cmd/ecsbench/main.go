// Filter maintenance benchmark.
//
//	go build ./cmd/ecsbench
//	./ecsbench -profile cpu
//	go tool pprof -http=":8000" ./ecsbench cpu.pprof
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/l1jgo/ecsrt/internal/core/ecs"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

type comp1 struct{ V, W int64 }

type comp2 struct{ V, W int64 }

type comp3 struct{ V, W int64 }

func main() {
	entities := flag.Int("entities", 10000, "entities per round")
	rounds := flag.Int("rounds", 20, "rounds")
	mode := flag.String("profile", "", "cpu, mem or empty for none")
	flag.Parse()

	if err := bench(*mode, *rounds, *entities); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// bench returns instead of exiting so the profile is flushed on failure too.
func bench(mode string, rounds, entities int) error {
	switch mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		return fmt.Errorf("unknown profile mode %q", mode)
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	start := time.Now()
	for r := 0; r < rounds; r++ {
		if err := run(entities); err != nil {
			log.Error("round failed", zap.Int("round", r), zap.Error(err))
			return fmt.Errorf("round %d: %w", r, err)
		}
	}
	log.Info("done",
		zap.Int("rounds", rounds),
		zap.Int("entities", entities),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// run builds three live filters, then toggles components so every
// mutation fans out to all of them.
func run(n int) error {
	w := ecs.NewWorld(ecs.WithCapacity(n))
	f12 := ecs.Filter2[comp1, comp2](w)
	f3 := ecs.Filter1[comp3](w)
	f123 := ecs.Filter3[comp1, comp2, comp3](w)

	for i := 0; i < n; i++ {
		id, err := w.CreateEntity()
		if err != nil {
			return err
		}
		if _, err := ecs.SetComponent(w, id, comp1{V: int64(i)}); err != nil {
			return err
		}
		if _, err := ecs.SetComponent(w, id, comp2{V: 1}); err != nil {
			return err
		}
		if i%2 == 0 {
			if _, err := ecs.AddComponent[comp3](w, id); err != nil {
				return err
			}
		}
	}

	ecs.Each2(w, f12, func(_ ecs.EntityID, a *comp1, b *comp2) {
		a.V += b.V
		a.W += b.V
	})

	for _, id := range f3.Entities() {
		if err := ecs.RemoveComponent[comp2](w, id); err != nil {
			return err
		}
	}
	if f123.Len() != 0 || f12.Len() != n-f3.Len() {
		return fmt.Errorf("filter sizes off: f12=%d f3=%d f123=%d", f12.Len(), f3.Len(), f123.Len())
	}
	return nil
}
