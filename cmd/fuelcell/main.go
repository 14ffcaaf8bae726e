//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"fuelcell/internal/app"
	"fuelcell/internal/audio"
	"fuelcell/internal/core"
	_ "fuelcell/internal/sims/fuelcell"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	for _, note := range cfg.Normalize() {
		log.Printf("fuelcell: %s", note)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	values, err := cfg.SimValues(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}

	sim := factory(values)
	seed := app.SeedFrom(values, cfg.Seed)
	runner := app.NewRunner(sim, core.NewFrameClock(nil, cfg.TPS), seed)

	if cfg.Audio {
		player := audio.NewPlayer(cfg.Volume)
		if err := player.Init(); err != nil {
			log.Printf("fuelcell: audio disabled: %v", err)
		} else {
			defer player.Close()
			runner.AddListener(player)
		}
	}

	game := app.New(runner, cfg.Scale, cfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("fuelcell - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
