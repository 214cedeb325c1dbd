package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/loaders"
	"github.com/df07/phong-raytracer/pkg/renderer"
	"github.com/df07/phong-raytracer/pkg/scene"
)

// options collects the command line configuration
type options struct {
	sceneName  string
	viewName   string
	format     string
	outputDir  string
	sceneOpts  scene.Options
	renderConf renderer.Config
}

func main() {
	defaults := scene.DefaultOptions()
	renderDefaults := renderer.DefaultConfig()

	// Parse command line flags
	sceneName := flag.String("scene", "classic", "Scene name: "+strings.Join(scene.Names(), ", "))
	viewName := flag.String("view", "all", "View to render, or 'all'")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	outputDir := flag.String("output", "output", "Output root directory")
	envPath := flag.String("env", "", "Environment image for the showcase scene (P6 PPM, PNG or JPEG)")
	envWidth := flag.Int("env-width", defaults.EnvWidth, "Declared environment width (0 = use the file size)")
	envHeight := flag.Int("env-height", defaults.EnvHeight, "Declared environment height (0 = use the file size)")
	modelDir := flag.String("models", "", "Directory with tetrahedron.obj and octahedron.obj")
	workers := flag.Int("workers", renderDefaults.NumWorkers, "Number of parallel workers (0 = auto-detect CPU count)")
	tileSize := flag.Int("tile", renderDefaults.TileSize, "Tile size in pixels")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	opts := options{
		sceneName: *sceneName,
		viewName:  *viewName,
		format:    *format,
		outputDir: *outputDir,
		sceneOpts: scene.Options{
			EnvironmentPath: *envPath,
			EnvWidth:        *envWidth,
			EnvHeight:       *envHeight,
			ModelDir:        *modelDir,
		},
		renderConf: renderer.Config{
			TileSize:   *tileSize,
			NumWorkers: *workers,
		},
	}

	fmt.Println("Starting Phong Raytracer...")
	if err := run(context.Background(), opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Phong Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-9s - %s\n", info.Name, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene>/<view>.<format>")
}

// run renders the selected views and writes one image file per view
func run(ctx context.Context, opts options, logger core.Logger) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	sc, err := createScene(opts.sceneName, opts.sceneOpts)
	if err != nil {
		return err
	}

	views, err := selectViews(sc, opts.viewName)
	if err != nil {
		return err
	}

	sceneDir, err := createOutputDir(opts.outputDir, sc.Name)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(sc, opts.renderConf, logger)
	for _, view := range views {
		fb, stats, err := raytracer.Render(ctx, view)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", view.Name, err)
		}

		filename := filepath.Join(sceneDir, view.Name+"."+opts.format)
		if err := saveImage(filename, fb.ToRGBA(), opts.format); err != nil {
			return err
		}
		logger.Printf("Render saved as %s (%.0f pixels/s)\n", filename, stats.PixelsPerSecond())
	}

	return nil
}

func validateFormat(format string) error {
	switch format {
	case "ppm", "png":
		return nil
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}

// createScene builds a built-in scene by name
func createScene(name string, opts scene.Options) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name is required")
	}
	return scene.Lookup(name, opts)
}

// selectViews returns every view for "all", or the single named view
func selectViews(sc *scene.Scene, name string) ([]scene.View, error) {
	if name == "all" {
		return sc.Views, nil
	}
	view, ok := sc.View(name)
	if !ok {
		return nil, fmt.Errorf("scene %s has no view %q (available: %s)",
			sc.Name, name, strings.Join(sc.ViewNames(), ", "))
	}
	return []scene.View{view}, nil
}

// createOutputDir creates <root>/<scene> and returns its path
func createOutputDir(root, sceneName string) (string, error) {
	dir := filepath.Join(root, sceneName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	return dir, nil
}

func saveImage(filename string, img *image.RGBA, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	switch format {
	case "png":
		err = png.Encode(file, img)
	default:
		err = loaders.WritePPM(file, img)
	}
	if err != nil {
		return fmt.Errorf("error saving %s: %w", strings.ToUpper(format), err)
	}
	return nil
}
