package main

import (
	"flag"
	"os"

	"github.com/labstack/gommon/log"

	"github.com/df07/go-motionblur-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port)

	log.Infof("Motion Blur Raytracer Web Server")
	log.Infof("Visit http://localhost:%d/api/render?scene=random to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Errorf("Error starting server: %v", err)
		os.Exit(1)
	}
}
