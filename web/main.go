package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/phong-raytracer/pkg/scene"
	"github.com/df07/phong-raytracer/web/server"
)

func main() {
	defaults := scene.DefaultOptions()

	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	envPath := flag.String("env", "", "Environment image for the showcase scene")
	envWidth := flag.Int("env-width", defaults.EnvWidth, "Declared environment width (0 = use the file size)")
	envHeight := flag.Int("env-height", defaults.EnvHeight, "Declared environment height (0 = use the file size)")
	modelDir := flag.String("models", "", "Directory with tetrahedron.obj and octahedron.obj")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port, scene.Options{
		EnvironmentPath: *envPath,
		EnvWidth:        *envWidth,
		EnvHeight:       *envHeight,
		ModelDir:        *modelDir,
	})

	log.Printf("Phong Raytracer Web Server")
	log.Printf("Visit http://localhost:%d/api/render?scene=classic to render", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
