package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"fuelcell/internal/app"
	"fuelcell/internal/audio"
	"fuelcell/internal/core"
	"fuelcell/internal/sims/fuelcell"
	"fuelcell/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindTerminal(flag.CommandLine)
	flag.BoolVar(&cfg.Audio, "audio", false, "play a chime on each reaction")
	flag.Parse()
	for _, note := range cfg.Normalize() {
		log.Printf("fuelcell-term: %s", note)
	}

	values, err := cfg.SimValues(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	world := fuelcell.NewWithConfig(fuelcell.FromMap(values))
	runner := app.NewRunner(world, core.NewFrameClock(nil, cfg.TPS), app.SeedFrom(values, cfg.Seed))

	if cfg.Audio {
		player := audio.NewPlayer(cfg.Volume)
		if err := player.Init(); err != nil {
			log.Printf("fuelcell-term: audio disabled: %v", err)
		} else {
			defer player.Close()
			runner.AddListener(player)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.NewDriver(screen, runner, cfg.TPS).Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
