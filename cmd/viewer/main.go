// Command viewer renders a scene file through the gosiegl software pipeline
// in an ebiten window.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/gosiegl"
)

func main() {
	configPath := flag.String("config", "", "scene file (default $"+gosiegl.SceneEnv+" or the built-in scene)")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	outlines := flag.Bool("outline", false, "stroke polygon edges")
	animateLight := flag.Bool("animate-light", true, "move the first light around the scene")
	flag.Parse()

	cfg, err := gosiegl.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Initializing Scene...")
	scene, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}

	pipeline := gosiegl.NewPipeline(*width, *height)
	if cfg.Ambient > 0 {
		pipeline.Ambient = cfg.Ambient
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("gosiegl viewer")
	if err := ebiten.RunGame(NewGame(scene, pipeline, *outlines, *animateLight)); err != nil {
		log.Fatal(err)
	}
}
