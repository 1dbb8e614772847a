// Command raytrace renders a built-in scene to a PNG file, streaming
// periodic snapshots to disk as the render progresses.
package main

import (
	"context"
	"os"
	"runtime/pprof"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cbro/rayer-go/pkg/geometry"
	"github.com/cbro/rayer-go/pkg/integrator"
	"github.com/cbro/rayer-go/pkg/logging"
	"github.com/cbro/rayer-go/pkg/random"
	"github.com/cbro/rayer-go/pkg/scene"
	"github.com/cbro/rayer-go/pkg/scheduler"
)

type options struct {
	output     string
	sceneName  string
	samples    int
	width      int
	height     int
	workers    int
	cpuProfile string
	verbose    bool
}

func main() {
	opts := &options{}
	log := logging.NewStdLogger(os.Stderr, false)

	root := &cobra.Command{
		Use:   "raytrace",
		Short: "Renders a scene with the spectral path tracer",
		RunE: func(cmd *cobra.Command, args []string) error {
			log = logging.NewStdLogger(os.Stderr, opts.verbose)
			return run(cmd.Context(), opts, log)
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.output, "output", "render.png", "output PNG file path")
	flags.StringVar(&opts.sceneName, "scene", "cornell", "scene to render (cornell, spheres, materials)")
	flags.IntVar(&opts.samples, "samples", 0, "samples per pixel (0 uses the scene's recommended count)")
	flags.IntVar(&opts.width, "width", 0, "image width in pixels (0 uses the scene's recommended size)")
	flags.IntVar(&opts.height, "height", 0, "image height in pixels (0 uses the scene's recommended size)")
	flags.IntVar(&opts.workers, "workers", 0, "parallel sample workers (0 uses all CPUs)")
	flags.StringVar(&opts.cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options, log logging.Logger) error {
	if opts.cpuProfile != "" {
		f, err := os.Create(opts.cpuProfile)
		if err != nil {
			return errors.Wrap(err, "creating CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "starting CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	built, err := scene.Lookup(opts.sceneName)
	if err != nil {
		return errors.Wrap(err, "resolving scene")
	}

	cfg := scheduler.Config{
		Width:     firstPositive(opts.width, built.Config.Width),
		Height:    firstPositive(opts.height, built.Config.Height),
		Samples:   firstPositive(opts.samples, built.Config.Samples),
		Workers:   opts.workers,
		RenderSky: built.Config.RenderSky,
	}

	log.Printf("rendering %q at %dx%d, %d samples/pixel", opts.sceneName, cfg.Width, cfg.Height, cfg.Samples)

	tracer := integrator.NewPathTracer(cfg.RenderSky)
	sink := &pngSnapshotter{path: opts.output, width: cfg.Width, height: cfg.Height, log: log}

	newRNG := func() geometry.Random { return random.NewFromEntropy() }
	if _, err := scheduler.Run(ctx, cfg, built.Camera, built.World, tracer, newRNG, sink, log); err != nil {
		return errors.Wrap(err, "rendering")
	}

	log.Printf("wrote %s", opts.output)
	return nil
}

func firstPositive(a, b int) int {
	if a > 0 {
		return a
	}
	return b
}
