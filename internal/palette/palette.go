package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// DefaultID names the palette used when none is requested.
const DefaultID = "classic"

// ErrUnknownPalette is returned when a palette ID is not in the registry.
var ErrUnknownPalette = errors.New("unknown palette")

// Def defines a colour scheme loaded from JSON.
type Def struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "classic")
	Name   string `json:"name"`   // Display name (e.g., "Classic")
	Wall   string `json:"wall"`   // Hex colour of walls
	Path   string `json:"path"`   // Hex colour of open cells and passages
	Accent string `json:"accent"` // Hex colour of the viewer status line
}

// WallColor returns the wall colour as a tcell.Color.
func (d *Def) WallColor() tcell.Color {
	return colorOr(d.Wall, tcell.ColorBlack)
}

// PathColor returns the path colour as a tcell.Color.
func (d *Def) PathColor() tcell.Color {
	return colorOr(d.Path, tcell.ColorWhite)
}

// AccentColor returns the accent colour as a tcell.Color.
func (d *Def) AccentColor() tcell.Color {
	return colorOr(d.Accent, tcell.ColorYellow)
}

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}

// File represents the structure of palettes.json.
type File struct {
	Palettes []Def `json:"palettes"`
}

// LoadPalettes loads palette definitions from the embedded palettes.json file.
func LoadPalettes() ([]Def, error) {
	file, err := Load[File]("palettes.json")
	if err != nil {
		return nil, err
	}
	return file.Palettes, nil
}

// Registry holds loaded palettes keyed by ID.
type Registry struct {
	byID map[string]*Def
	all  []Def
}

// NewRegistry creates a registry from loaded palette definitions.
func NewRegistry(palettes []Def) *Registry {
	registry := &Registry{
		byID: make(map[string]*Def),
		all:  palettes,
	}
	for i := range palettes {
		registry.byID[strings.ToLower(palettes[i].ID)] = &palettes[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded palettes.json.
// Every colour is validated so a bad entry fails at startup.
func LoadRegistry() (*Registry, error) {
	palettes, err := LoadPalettes()
	if err != nil {
		return nil, err
	}
	if len(palettes) == 0 {
		return nil, errors.New("no palettes loaded from palettes.json")
	}
	for _, p := range palettes {
		for _, hex := range []string{p.Wall, p.Path, p.Accent} {
			if _, err := ParseHexColor(hex); err != nil {
				return nil, fmt.Errorf("palette %s: %w", p.ID, err)
			}
		}
	}
	return NewRegistry(palettes), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the palette with the given ID, ignoring case.
func (r *Registry) Get(id string) (*Def, error) {
	def, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPalette, id, strings.Join(r.IDs(), ", "))
	}
	return def, nil
}

// IDs returns the palette IDs in file order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.all))
	for i, p := range r.all {
		ids[i] = p.ID
	}
	return ids
}

// All returns all palette definitions.
func (r *Registry) All() []Def {
	return r.all
}

// Count returns the number of palettes in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
