package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"islandgen/internal/app"
	"islandgen/internal/console"
	"islandgen/internal/island"
	"islandgen/internal/render"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	islandCfg, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Interactive {
		islandCfg, err = console.Prompt(os.Stdin, os.Stdout, islandCfg)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
	}

	out := console.NewPrinter(os.Stdout, cfg.Color)
	if cfg.Verbose {
		must(out.Parameters(islandCfg.Parameters()))
	}

	isl, err := island.Generate(islandCfg)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	if cfg.PrintRaw {
		must(out.Raw(isl.Raw))
		os.Stdout.WriteString("\n")
	}
	if cfg.PrintNormalized {
		must(out.Raw(isl.Height))
		os.Stdout.WriteString("\n")
	}
	if cfg.PrintMap {
		must(out.Symbols(isl.Biomes))
	}
	if cfg.Verbose {
		must(out.Summary(isl))
	}

	if cfg.Out == "" {
		return
	}
	fs, base := outputFS(cfg.Out)
	opts := render.Options{Scale: cfg.Scale}
	for _, format := range cfg.FormatList() {
		name, err := render.DefaultName(base, format)
		if err != nil {
			log.Fatal(err)
		}
		if err := render.Save(fs, name, format, isl, opts); err != nil {
			log.Fatalf("write %s: %v", name, err)
		}
		if cfg.Verbose {
			log.Printf("wrote %s", filepath.Join(fs.Root(), name))
		}
	}
}

// outputFS roots a filesystem so that out can be addressed relative to it.
func outputFS(out string) (billy.Filesystem, string) {
	if !filepath.IsAbs(out) {
		return osfs.New("."), out
	}
	root := filepath.VolumeName(out) + string(filepath.Separator)
	rel, err := filepath.Rel(root, out)
	if err != nil {
		log.Fatalf("output path %q: %v", out, err)
	}
	return osfs.New(root), rel
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
