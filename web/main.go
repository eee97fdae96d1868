package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/df07/go-pathtracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	texturePath := flag.String("texture", scene.DefaultTexturePath, "Image used by the textures scene")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port, *texturePath)

	log.Printf("Path Tracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=default&width=400&spp=50", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
