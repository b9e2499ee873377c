package gamescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MapFileName is the level grid every level directory must contain.
const MapFileName = "map.txt"

// rulesFileNames are checked in order; the first one present wins.
var rulesFileNames = []string{"rules.toml", "rules.json"}

// LevelEntry represents a playable level in the data directory
type LevelEntry struct {
	Name      string // Display name (directory name)
	Dir       string // Directory path
	MapPath   string // Path to the map grid
	RulesPath string // Path to the level's rules, empty when the level uses the defaults
}

// ScanDataDirectory scans the data directory for available levels.
// Returns one LevelEntry per directory holding a map file, sorted by name.
func ScanDataDirectory(dataPath string) ([]LevelEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var levels []LevelEntry

	for _, entry := range entries {
		// Skip non-directories
		if !entry.IsDir() {
			continue
		}

		// Skip hidden directories
		dirName := entry.Name()
		if strings.HasPrefix(dirName, ".") {
			continue
		}

		levelPath := filepath.Join(dataPath, dirName)
		level, ok := scanLevel(levelPath)
		if !ok {
			continue
		}
		level.Name = dirName
		levels = append(levels, level)
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i].Name < levels[j].Name })
	return levels, nil
}

// scanLevel looks for the map and rules files in a level directory
func scanLevel(levelPath string) (LevelEntry, bool) {
	mapPath := filepath.Join(levelPath, MapFileName)
	if info, err := os.Stat(mapPath); err != nil || info.IsDir() {
		return LevelEntry{}, false
	}

	level := LevelEntry{Dir: levelPath, MapPath: mapPath}
	for _, name := range rulesFileNames {
		rulesPath := filepath.Join(levelPath, name)
		if info, err := os.Stat(rulesPath); err == nil && !info.IsDir() {
			level.RulesPath = rulesPath
			break
		}
	}
	return level, true
}

// FindLevel returns the level with the given name
func FindLevel(levels []LevelEntry, name string) (LevelEntry, bool) {
	for _, l := range levels {
		if l.Name == name {
			return l, true
		}
	}
	return LevelEntry{}, false
}

// ResolveLevel picks the map and rules files for a run.
// An explicit map path bypasses the data directory; an explicit rules path
// overrides the level's own rules.
func ResolveLevel(dataPath, name, mapPath, rulesPath string) (LevelEntry, error) {
	var level LevelEntry
	if mapPath != "" {
		level = LevelEntry{
			Name:    strings.TrimSuffix(filepath.Base(mapPath), filepath.Ext(mapPath)),
			Dir:     filepath.Dir(mapPath),
			MapPath: mapPath,
		}
	} else {
		levels, err := ScanDataDirectory(dataPath)
		if err != nil {
			return LevelEntry{}, err
		}
		found, ok := FindLevel(levels, name)
		if !ok {
			names := make([]string, len(levels))
			for i, l := range levels {
				names[i] = l.Name
			}
			return LevelEntry{}, fmt.Errorf("level %q not found in %s (available: %s)", name, dataPath, strings.Join(names, ", "))
		}
		level = found
	}

	if rulesPath != "" {
		level.RulesPath = rulesPath
	}
	return level, nil
}
