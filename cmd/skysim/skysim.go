package main

import(
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/abworrall/skysim/pkg/catalog"
	"github.com/abworrall/skysim/pkg/metrics"
	"github.com/abworrall/skysim/pkg/skysim"
)

var(
	fConfig string
	fVerbosity int
	fOutput string
	fCatalog string
	fWorkers int
	fBlender string
	fTonemapper string
	fOverwrite bool
	fDumpConfig bool
	fMetrics string
)

func init() {
	flag.StringVar(&fConfig, "config", "", "yaml config file; defaults are used for anything it leaves out")
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.StringVar(&fOutput, "out", "", "output filename (.png for a still, .gif for a sequence)")
	flag.StringVar(&fCatalog, "catalog", "", "yaml/json star catalog file or dir, used instead of the built-in bright stars")
	flag.IntVar(&fWorkers, "workers", 0, "number of compositing workers (0 means NumCPU-1)")
	flag.StringVar(&fBlender, "blender", "", "how object light combines with the sky: "+skysim.NewConfig().ListBlenders())
	flag.StringVar(&fTonemapper, "tonemapper", "", "how to tonemap the frames, if at all: "+skysim.ListTonemappers())
	flag.BoolVar(&fOverwrite, "overwrite", false, "replace output files that already exist")
	flag.BoolVar(&fDumpConfig, "dumpconfig", false, "print the final configuration as yaml, and exit")
	flag.StringVar(&fMetrics, "metrics", "", "write render metrics to this file, in prometheus textfile format")
	flag.Parse()
}

func main() {
	cfg := skysim.NewConfig()
	if fConfig != "" {
		var err error
		if cfg, err = skysim.LoadConfig(fConfig); err != nil {
			log.Fatal(err)
		}
	}

	// Override the config file with command line args, if relevant
	if fVerbosity > 0 { cfg.Verbosity = fVerbosity }
	if fOutput != "" { cfg.Filename = fOutput }
	if fWorkers > 0 { cfg.Workers = fWorkers }
	if fBlender != "" { cfg.Blender = fBlender }
	if fTonemapper != "" { cfg.Tonemapper = fTonemapper }
	if fOverwrite { cfg.Overwrite = true }

	if fDumpConfig {
		fmt.Print(cfg.AsYaml())
		return
	}
	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	d, err := cfg.Derive()
	if err != nil {
		log.Fatalf("Bad configuration: %v\n", err)
	}
	log.Printf("skysim: %d frames of %dx%d, %s\n", d.Frames, d.ImagePixels, d.ImagePixels, d.ObservationInfo())

	stars := catalog.BrightStars()
	if fCatalog != "" {
		if stars, err = catalog.LoadFilesAndDirs(fCatalog); err != nil {
			log.Fatal(err)
		}
	}
	stars = catalog.QueryRegion(stars, d.Pointings, d.FieldOfView/2*skysim.FieldOfViewBuffer, d.MaximumMagnitude, d.ObjectColours)

	planets, err := catalog.PlanetTables(d.LocalTimes)
	if err != nil {
		log.Fatal(err)
	}

	if d.Verbosity > 0 {
		log.Printf("%d stars in the region, brighter than magnitude %.2f\n", len(stars), d.MaximumMagnitude)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m, err := skysim.CreateImageMatrix(ctx, d, planets, stars)
	if err != nil {
		log.Fatalf("Render failed: %v\n", err)
	}

	if err := skysim.Publish(d, m); err != nil {
		log.Fatalf("Publish failed: %v\n", err)
	}
	log.Printf("Output written: %v\n", skysim.OutputFiles(d, m))

	if fMetrics != "" {
		if err := metrics.WriteTextfile(fMetrics); err != nil {
			log.Fatal(err)
		}
	}
}
