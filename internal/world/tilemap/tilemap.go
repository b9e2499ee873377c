// Package tilemap loads the level grid and answers solid-point queries for
// characters and projectiles. A TileMap is immutable once loaded.
package tilemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// TileSize is the width and height of one tile in pixels.
const TileSize = 50

// MaxRowLength is the longest map row accepted, in tiles.
const MaxRowLength = 1 << 20

// Tile is the content of a single grid cell.
type Tile uint8

const (
	Empty Tile = iota
	SolidA
	SolidB
)

// Solid reports whether the tile blocks movement.
func (t Tile) Solid() bool {
	return t != Empty
}

// String returns the map-source character for the tile.
func (t Tile) String() string {
	switch t {
	case SolidA:
		return `"`
	case SolidB:
		return "#"
	default:
		return " "
	}
}

// MapFormatError is returned when a map source cannot describe a grid.
type MapFormatError struct {
	Source string // File name or "<input>"
	Reason string
}

func (e *MapFormatError) Error() string {
	return fmt.Sprintf("invalid map %s: %s", e.Source, e.Reason)
}

// TileMap is a fixed-size grid of tiles indexed as cells[x][y].
type TileMap struct {
	width  int
	height int
	cells  [][]Tile
}

// LoadFile reads a map from a text file.
func LoadFile(path string) (*TileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", path, err)
	}
	defer f.Close()

	return load(f, path)
}

// Load reads a map from r.
func Load(r io.Reader) (*TileMap, error) {
	return load(r, "<input>")
}

// Parse builds a map from an in-memory source.
func Parse(src string) (*TileMap, error) {
	return load(strings.NewReader(src), "<input>")
}

func load(r io.Reader, source string) (*TileMap, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxRowLength+2)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &MapFormatError{Source: source, Reason: fmt.Sprintf("row %d is longer than %d tiles", len(lines)+1, MaxRowLength)}
		}
		return nil, fmt.Errorf("failed to read map %s: %w", source, err)
	}

	if len(lines) == 0 {
		return nil, &MapFormatError{Source: source, Reason: "no rows"}
	}
	width := len(lines[0])
	if width == 0 {
		return nil, &MapFormatError{Source: source, Reason: "first row is empty"}
	}

	m := &TileMap{
		width:  width,
		height: len(lines),
		cells:  make([][]Tile, width),
	}
	for x := 0; x < width; x++ {
		m.cells[x] = make([]Tile, m.height)
		for y, line := range lines {
			// Short rows leave the remaining cells empty.
			if x >= len(line) {
				continue
			}
			m.cells[x][y] = tileFor(line[x])
		}
	}

	return m, nil
}

func tileFor(c byte) Tile {
	switch c {
	case '"':
		return SolidA
	case '#':
		return SolidB
	default:
		return Empty
	}
}

// Width returns the map width in tiles.
func (m *TileMap) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *TileMap) Height() int { return m.height }

// WidthPx returns the map width in pixels.
func (m *TileMap) WidthPx() int { return m.width * TileSize }

// HeightPx returns the map height in pixels.
func (m *TileMap) HeightPx() int { return m.height * TileSize }

// TileAt returns the tile at grid coordinates, or Empty outside the grid.
func (m *TileMap) TileAt(col, row int) Tile {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return Empty
	}
	return m.cells[col][row]
}

// IsSolid reports whether the pixel (x, y) lies in a solid tile.
//
// Everything outside the grid counts as solid: y < 0 is the sealed ceiling,
// and the side walls and the floor below the last row are sealed the same way
// so that no query ever indexes past the grid.
func (m *TileMap) IsSolid(x, y int) bool {
	if y < 0 || x < 0 || x >= m.WidthPx() || y >= m.HeightPx() {
		return true
	}
	return m.cells[x/TileSize][y/TileSize].Solid()
}
