//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"islandgen/internal/app"
	"islandgen/internal/island"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	islandCfg, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	builder, err := island.NewBuilder(islandCfg)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	game := app.New(builder, cfg.Scale, cfg.Rate)

	ebiten.SetWindowTitle(fmt.Sprintf("islandgen — seed %d", islandCfg.Seed))
	ebiten.SetWindowSize(islandCfg.Width*cfg.Scale, islandCfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
