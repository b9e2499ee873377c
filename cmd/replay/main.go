// Command replay runs a recorded session headlessly and reports the outcome.
package main

import (
	"flag"
	"log"

	"chosenoffset.com/marioshooter/internal/entity"
	"chosenoffset.com/marioshooter/internal/match"
	"chosenoffset.com/marioshooter/internal/replay"
	"chosenoffset.com/marioshooter/internal/simulation"
	"chosenoffset.com/marioshooter/internal/world/tilemap"
)

func main() {
	in := flag.String("in", "", "replay file to play")
	mapPath := flag.String("map", "", "map file (defaults to the one named in the replay)")
	rulesPath := flag.String("config", "", "rules file (json or toml); defaults to the rules in the replay")
	flag.Parse()

	if *in == "" {
		log.Fatal("Usage: replay -in <file> [-map <file>] [-config <file>]")
	}

	rec, err := replay.Load(*in)
	if err != nil {
		log.Fatalf("Failed to load replay: %v", err)
	}

	if *mapPath == "" {
		*mapPath = rec.Map
	}
	tiles, err := tilemap.LoadFile(*mapPath)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	// Rules default to the ones the session was recorded with
	rules := rec.Rules
	switch {
	case *rulesPath != "":
		rules, err = simulation.LoadConfig(*rulesPath)
		if err != nil {
			log.Fatalf("Failed to load rules: %v", err)
		}
	case rules == nil:
		log.Println("Warning: Replay carries no rules, using defaults")
		rules = simulation.DefaultConfig()
	}

	m := match.New(tiles, rules)
	n := replay.Play(m, rec)
	log.Printf("Played %d frames (%d ticks simulated)", n, m.TickCount())

	for _, id := range []entity.ID{entity.Player1, entity.Player2} {
		c := m.Character(id)
		log.Printf("%s: health=%d alive=%v at (%d,%d)", id, c.Health, c.Alive, c.X, c.Y)
	}

	if !m.Ended() {
		log.Println("Result: match still running")
		return
	}
	if winner, ok := m.Winner(); ok {
		log.Printf("Result: %s wins", winner)
	} else {
		log.Println("Result: draw")
	}
}
