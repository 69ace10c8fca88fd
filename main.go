package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/renderer"
	"github.com/df07/go-motionblur-raytracer/pkg/scene"
)

// options holds the parsed command line flags
type options struct {
	sceneType   string
	width       int
	spp         int
	timeSamples int
	depth       int
	workers     int
	seed        int64
	out         string
	help        bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.StringVar(&opts.sceneType, "scene", "random", "Scene type: 'default', 'random', 'classic' or 'simple'")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default); height follows the scene aspect ratio")
	fs.IntVar(&opts.spp, "spp", 0, "Samples per pixel per time sample (0 = scene default)")
	fs.IntVar(&opts.timeSamples, "time-samples", 0, "Scene poses across the shutter (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = one per logical CPU)")
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed for scene and sampling (0 = clock)")
	fs.StringVar(&opts.out, "out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	err := fs.Parse(args)
	return opts, err
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if opts.help {
		showHelp()
		return
	}

	if err := run(opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Motion Blur Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	_, _ = parseFlags([]string{"-h"})
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
}

// run renders the selected scene and writes it to a PNG file
func run(opts options, logger core.Logger) error {
	selectedScene, err := createScene(opts.sceneType, opts.seed)
	if err != nil {
		return err
	}
	config := buildRenderConfig(selectedScene, opts)

	logHostInfo(logger, config)

	filename := opts.out
	if filename == "" {
		filename = filepath.Join("output", selectedScene.Name, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	raytracer, err := renderer.NewRaytracer(selectedScene.World, selectedScene.Camera(), config, logger)
	if err != nil {
		return err
	}

	buffer, stats, err := raytracer.Render(context.Background(), selectedScene.Time0, selectedScene.Time1)
	if err != nil {
		return err
	}
	logger.Printf("Traced %d camera rays (%d spp x %d time samples) in %v, mean luminance %.3f",
		stats.TotalSamples, stats.SamplesPerPixel, stats.TimeSamples, stats.Elapsed, stats.MeanLuminance)

	img, err := renderer.ToImage(buffer, config.Width, config.Height)
	if err != nil {
		return err
	}
	if err := renderer.SavePNG(filename, img); err != nil {
		return err
	}

	logger.Printf("Render saved as %s", filename)
	return nil
}

// createScene builds the named scene, seeding random population with seed
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	return scene.Create(sceneType, seed)
}

// buildRenderConfig applies command line overrides to the scene's settings
func buildRenderConfig(s *scene.Scene, opts options) renderer.RenderConfig {
	s.Resize(opts.width)
	return renderer.MergeRenderConfig(s.RenderConfig, renderer.RenderConfig{
		SamplesPerPixel: opts.spp,
		TimeSamples:     opts.timeSamples,
		MaxDepth:        opts.depth,
		NumWorkers:      opts.workers,
		Seed:            opts.seed,
	})
}

func logHostInfo(logger core.Logger, config renderer.RenderConfig) {
	workers := config.NumWorkers
	if workers == 0 {
		workers = renderer.DetectWorkers()
	}
	model := "unknown CPU"
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		model = infos[0].ModelName
	}
	logger.Printf("Host: %s, rendering with %d workers", model, workers)
}
