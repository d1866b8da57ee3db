// Package render turns a finished maze into text or image output.
package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStyle is returned for an unrecognized style name.
var ErrInvalidStyle = errors.New("invalid render style")

// Style selects an output format.
type Style int

const (
	// Heavy draws passages with heavy box-drawing lines.
	Heavy Style = iota
	// Thin draws passages with light box-drawing lines.
	Thin
	// Double draws passages with double box-drawing lines.
	Double
	// Hex writes each cell's door bits as one hexadecimal digit.
	Hex
	// PPM writes a plain-text colour pixmap.
	PPM
	// PBM writes a plain-text bitmap.
	PBM
)

// DefaultStyle is used when no style is requested.
const DefaultStyle = Heavy

var styleNames = [...]string{
	Heavy:  "heavy",
	Thin:   "thin",
	Double: "double",
	Hex:    "hex",
	PPM:    "ppm",
	PBM:    "pbm",
}

// ParseStyle maps a style name to a Style, ignoring case.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range styleNames {
		if n == name {
			return Style(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidStyle, name, strings.Join(styleNames[:], ", "))
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// IsText reports whether s renders one character per cell.
func (s Style) IsText() bool {
	return s >= Heavy && s <= Hex
}

// IsImage reports whether s renders a pixel image.
func (s Style) IsImage() bool {
	return s == PPM || s == PBM
}

// TextStyles lists the character-per-cell styles in cycling order.
func TextStyles() []Style {
	return []Style{Heavy, Thin, Double, Hex}
}
