package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"chosenoffset.com/marioshooter/internal/game"
	"chosenoffset.com/marioshooter/internal/gamescanner"
	"chosenoffset.com/marioshooter/internal/match"
	ebitenrender "chosenoffset.com/marioshooter/internal/render/ebiten"
	"chosenoffset.com/marioshooter/internal/replay"
	"chosenoffset.com/marioshooter/internal/simulation"
	"chosenoffset.com/marioshooter/internal/world/tilemap"
)

func main() {
	// A .env file is optional; it only supplies flag defaults
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: Failed to load .env: %v", err)
	}

	dataDir := flag.String("data", envOr("MARIO_SHOOTER_DATA", "data"), "directory holding one subdirectory per level")
	levelName := flag.String("level", envOr("MARIO_SHOOTER_LEVEL", "classic"), "level to play")
	mapPath := flag.String("map", os.Getenv("MARIO_SHOOTER_MAP"), "map file to load instead of a level")
	rulesPath := flag.String("config", os.Getenv("MARIO_SHOOTER_CONFIG"), "rules file (json or toml)")
	recordPath := flag.String("record", "", "write a replay of the session to this file")
	list := flag.Bool("list", false, "list available levels and exit")
	flag.Parse()

	if *list {
		levels, err := gamescanner.ScanDataDirectory(*dataDir)
		if err != nil {
			log.Fatalf("Failed to scan data directory: %v", err)
		}
		for _, l := range levels {
			log.Printf("%s (%s)", l.Name, l.MapPath)
		}
		return
	}

	level, err := gamescanner.ResolveLevel(*dataDir, *levelName, *mapPath, *rulesPath)
	if err != nil {
		log.Fatalf("Failed to find level: %v", err)
	}

	log.Printf("Loading map: %s", level.MapPath)
	tiles, err := tilemap.LoadFile(level.MapPath)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	rules := simulation.DefaultConfig()
	if level.RulesPath != "" {
		rules, err = simulation.LoadConfig(level.RulesPath)
		if err != nil {
			log.Fatalf("Failed to load rules: %v", err)
		}
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(match.New(tiles, rules), renderer, inputMgr)
	if *recordPath != "" {
		g.Recorder = replay.NewRecorder(level.MapPath, rules)
	}

	engine.SetWindowSize(rules.Viewport.Width, rules.Viewport.Height)
	engine.SetWindowTitle("Mario Shooter")
	engine.SetTPS(60)

	log.Printf("Starting match on %s (%dx%d tiles)", level.Name, tiles.Width(), tiles.Height())
	runErr := engine.RunGame(g)

	if g.Recorder != nil {
		if err := replay.Save(*recordPath, g.Recorder.Recording()); err != nil {
			log.Printf("Failed to save replay: %v", err)
		} else {
			log.Printf("Saved %d frames to %s", g.Recorder.Len(), *recordPath)
		}
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
