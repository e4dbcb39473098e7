package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/saeidalz13/halfmap/internal/config"
	"github.com/saeidalz13/halfmap/models/halfmap"
)

// Prints freshly generated half maps for eyeballing and for feeding
// other tools. Configuration comes from the environment (see .env.example).
func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}
	log.Printf("stage: %s\tworkers: %d\tmax attempts: %d\n", cfg.Stage, cfg.Workers, cfg.MaxAttempts)

	generator, err := halfmap.NewGenerator(cfg.GeneratorOptions()...)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	halfMaps := make([]halfmap.HalfMap, 0, cfg.Count)
	for halfMap := range generator.HalfMaps(ctx) {
		halfMaps = append(halfMaps, halfMap)
		if len(halfMaps) == cfg.Count {
			break
		}
	}
	if len(halfMaps) < cfg.Count {
		log.Fatalf("generated %d of %d half maps\n", len(halfMaps), cfg.Count)
	}

	switch cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(halfMaps); err != nil {
			log.Fatalln(err)
		}
	default:
		for _, halfMap := range halfMaps {
			fmt.Printf("%s\n%s\n", halfMap.Uuid, halfMap)
		}
	}

	stats := generator.Stats()
	log.Printf("examined: %d\taccepted: %d\n", stats.Examined, stats.Accepted)
}
