package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
	"github.com/df07/go-motionblur-raytracer/pkg/integrator"
)

// Raytracer renders a world of animatable objects over a shutter interval
type Raytracer struct {
	world      geometry.Object
	camera     *geometry.Camera
	config     RenderConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a raytracer for the given world and camera.
// Zero TileSize and NumWorkers are filled in from the defaults.
func NewRaytracer(world geometry.Object, camera *geometry.Camera, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if world == nil {
		return nil, fmt.Errorf("%w: world is nil", ErrInvalidConfig)
	}
	if camera == nil {
		return nil, fmt.Errorf("%w: camera is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.TileSize == 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if config.NumWorkers == 0 {
		config.NumWorkers = DetectWorkers()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(),
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the path tracing integrator
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Config returns the effective render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Render traces the whole image at each of TimeSamples poses between time0
// and time1 and returns a row-major buffer of packed 0x00RRGGBB pixels.
// The world is posed once per time sample before any tile traces against it.
func (rt *Raytracer) Render(ctx context.Context, time0, time1 float64) ([]uint32, RenderStats, error) {
	if time1 < time0 {
		return nil, RenderStats{}, fmt.Errorf("%w: shutter closes at %g before it opens at %g", ErrInvalidConfig, time1, time0)
	}

	start := time.Now()
	width, height := rt.config.Width, rt.config.Height
	tiles := NewTileGrid(width, height, rt.config.TileSize)
	pixelStats := make([]PixelStats, width*height)

	seed := rt.config.Seed
	if seed == 0 {
		seed = start.UnixNano()
	}

	tileRenderer := NewTileRenderer(rt.world, rt.camera, rt.integrator, rt.config)
	workerPool := NewWorkerPool(tileRenderer, len(tiles), rt.config.NumWorkers)
	workerPool.Start()
	defer workerPool.Stop()

	rt.logger.Printf("Rendering %dx%d: %d spp x %d time samples, depth %d, %d tiles on %d workers",
		width, height, rt.config.SamplesPerPixel, rt.config.TimeSamples, rt.config.MaxDepth,
		len(tiles), workerPool.GetNumWorkers())

	totalSamples := 0
	for i := 0; i < rt.config.TimeSamples; i++ {
		if err := ctx.Err(); err != nil {
			return nil, RenderStats{}, err
		}

		t := TimeAt(time0, time1, i, rt.config.TimeSamples)
		rt.world.Update(t)

		for _, tile := range tiles {
			workerPool.SubmitTask(TileTask{
				Tile:       tile,
				TimeIndex:  i,
				TaskID:     tile.ID,
				Sampler:    core.NewSeededSampler(taskSeed(seed, tile.ID, i)),
				PixelStats: pixelStats,
			})
		}

		// Every tile must finish before the world moves to the next pose
		for range tiles {
			result, ok := workerPool.GetResult()
			if !ok {
				return nil, RenderStats{}, fmt.Errorf("worker pool closed during time sample %d", i)
			}
			totalSamples += result.Samples
		}

		rt.logger.Printf("Time sample %d/%d at t=%.4f complete (%v)", i+1, rt.config.TimeSamples, t, time.Since(start))
	}

	// Each sample already carries weight 1; the mean is taken over every
	// camera ray of every pose
	buffer := make([]uint32, width*height)
	for i := range pixelStats {
		buffer[i] = core.ToColor(pixelStats[i].ColorAccum, pixelStats[i].SampleCount)
	}

	mean, stdDev := luminanceStats(pixelStats)
	stats := RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    totalSamples,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		TimeSamples:     rt.config.TimeSamples,
		NumTiles:        len(tiles),
		NumWorkers:      workerPool.GetNumWorkers(),
		Elapsed:         time.Since(start),
		MeanLuminance:   mean,
		LuminanceStdDev: stdDev,
	}

	rt.logger.Printf("Render complete: %d samples in %v, mean luminance %.4f", stats.TotalSamples, stats.Elapsed, stats.MeanLuminance)
	return buffer, stats, nil
}

// Render is a convenience wrapper that renders world once with the default logger
func Render(world geometry.Object, camera *geometry.Camera, time0, time1 float64, config RenderConfig) ([]uint32, error) {
	rt, err := NewRaytracer(world, camera, config, nil)
	if err != nil {
		return nil, err
	}
	buffer, _, err := rt.Render(context.Background(), time0, time1)
	return buffer, err
}

// TimeAt returns the pose time of sample index out of count across [time0, time1)
func TimeAt(time0, time1 float64, index, count int) float64 {
	return time0 + float64(index)/float64(count)*(time1-time0)
}

// taskSeed mixes the base seed with the tile and pose so every task has
// an independent stream that does not depend on scheduling
func taskSeed(seed int64, tileID, timeIndex int) int64 {
	z := uint64(seed) + uint64(tileID)*0x9E3779B97F4A7C15 + uint64(timeIndex)*0xBF58476D1CE4E5B9
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
