// Command meshdump emits a configured scene of cubes, plants, spheres and
// text through the mesh builders and writes it as a Wavefront OBJ, with
// optional atlas UV and font atlas previews.
package main

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"blockmesh/internal/config"
	"blockmesh/internal/export"
	"blockmesh/internal/logger"
	"blockmesh/internal/meshing"
	"blockmesh/internal/profiling"
	"blockmesh/internal/registry"

	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool := meshing.NewWorkerPool(cfg.Meshing.Workers, cfg.Meshing.QueueSize)
	closer.Bind(func() {
		cancel()
		pool.Shutdown()
		logger.Sync()
	})
	defer closer.Close()

	if err := run(ctx, cfg, pool); err != nil {
		logger.Log.Error("meshdump failed", zap.Error(err))
		closer.Fatalln(err)
	}
}

func run(ctx context.Context, cfg *config.Config, pool *meshing.WorkerPool) error {
	reg, err := loadRegistry(cfg.Registry)
	if err != nil {
		return err
	}

	items, err := buildScene(cfg.Scene, reg)
	if err != nil {
		return err
	}
	logger.Log.Info("scene built",
		zap.Int("primitives", len(items)),
		zap.Int("workers", pool.Workers()))

	batch, err := pool.Batch(ctx, jobs(items))
	if err != nil {
		return err
	}

	if cfg.Output.OBJPath != "" {
		if err := writeOBJ(cfg.Output.OBJPath, items, batch); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Output.OBJPath, err)
		}
	}
	if cfg.Output.UVPath != "" {
		if err := writeUV(cfg.Output.UVPath, cfg.Output.UVSize, batch); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Output.UVPath, err)
		}
	}
	if cfg.Output.FontAtlasPath != "" {
		if err := writeFontAtlas(cfg.Output); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Output.FontAtlasPath, err)
		}
	}

	logger.Log.Info("done", zap.String("timings", profiling.TopN(5)))
	return nil
}

func loadRegistry(cfg config.RegistryConfig) (*registry.Registry, error) {
	if cfg.BlocksFile == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(cfg.BlocksFile, cfg.AssetsPath, cfg.KeepBuiltins)
}

func writeOBJ(path string, items []item, batch *meshing.Batch) (err error) {
	defer profiling.Track("export.OBJ")()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := export.NewOBJWriter(f)
	for i, it := range items {
		r := batch.Regions[i]
		if r.Floats == 0 {
			continue
		}
		if err := w.Group(it.name, batch.Vertices(i), r.Stride); err != nil {
			return fmt.Errorf("%s: %w", it.name, err)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	logger.Log.Info("wrote obj",
		zap.String("path", path),
		zap.Int("groups", w.Groups()),
		zap.Int("vertices", w.Vertices()))
	return nil
}

var uvPalette = []color.RGBA{
	{230, 80, 80, 160},
	{80, 200, 120, 160},
	{90, 140, 240, 160},
	{240, 200, 70, 160},
	{200, 110, 230, 160},
}

func writeUV(path string, size int, batch *meshing.Batch) error {
	defer profiling.Track("export.UV")()

	img := export.NewUVCanvas(size)
	drawn := 0
	for i, r := range batch.Regions {
		n, err := export.RenderUV(img, batch.Vertices(i), r.Stride, uvPalette[i%len(uvPalette)])
		if err != nil {
			return err
		}
		drawn += n
	}
	if err := export.SavePNG(path, img); err != nil {
		return err
	}
	logger.Log.Info("wrote uv preview",
		zap.String("path", path),
		zap.Int("size", size),
		zap.Int("triangles", drawn))
	return nil
}

func writeFontAtlas(cfg config.OutputConfig) error {
	defer profiling.Track("export.FontAtlas")()

	var ttf []byte
	if cfg.FontFile != "" {
		data, err := os.ReadFile(cfg.FontFile)
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
		ttf = data
	}
	atlas, err := export.BakeFontAtlas(ttf, cfg.FontCell)
	if err != nil {
		return err
	}
	if err := export.SavePNG(cfg.FontAtlasPath, atlas); err != nil {
		return err
	}
	logger.Log.Info("wrote font atlas",
		zap.String("path", cfg.FontAtlasPath),
		zap.Int("cell", cfg.FontCell))
	return nil
}
