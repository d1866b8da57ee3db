package render

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/amaze/internal/maze"
	"github.com/samdwyer/amaze/internal/telemetry"
)

// Glyph tables are indexed by a cell's door bits (N=1, S=2, E=4, W=8).
// A cell with no doors is blank.
var (
	heavyGlyphs  = []rune(" ╹╻┃╺┗┏┣╸┛┓┫━┻┳╋")
	thinGlyphs   = []rune(" ╵╷│╶└┌├╴┘┐┤─┴┬┼")
	doubleGlyphs = []rune(" ╨╥║╞╚╔╠╡╝╗╣═╩╦╬")
	hexGlyphs    = []rune("0123456789ABCDEF")
)

func glyphTable(s Style) ([]rune, bool) {
	switch s {
	case Heavy:
		return heavyGlyphs, true
	case Thin:
		return thinGlyphs, true
	case Double:
		return doubleGlyphs, true
	case Hex:
		return hexGlyphs, true
	default:
		return nil, false
	}
}

// Glyph returns the character for a cell with the given doors. Non-text
// styles fall back to the heavy table.
func Glyph(s Style, doors maze.Door4) rune {
	table, ok := glyphTable(s)
	if !ok {
		table = heavyGlyphs
	}
	return table[doors.Bits()]
}

// UnicodeRenderer writes one character per cell.
type UnicodeRenderer struct {
	style      Style
	table      []rune
	lineBreaks bool
}

// NewUnicodeRenderer creates a renderer for a text style. When lineBreaks is
// set every row, including the last, ends with a newline.
func NewUnicodeRenderer(style Style, lineBreaks bool) (*UnicodeRenderer, error) {
	table, ok := glyphTable(style)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a text style", ErrInvalidStyle, style)
	}
	return &UnicodeRenderer{style: style, table: table, lineBreaks: lineBreaks}, nil
}

// Style returns the renderer's style.
func (r *UnicodeRenderer) Style() Style {
	return r.style
}

// RenderString returns the rendered maze.
func (r *UnicodeRenderer) RenderString(g *maze.Wall4Grid) string {
	var b strings.Builder
	b.Grow((g.Width()*3 + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			b.WriteRune(r.table[g.DoorsAt(maze.NewCoord(x, y)).Bits()])
		}
		if r.lineBreaks {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Render writes the rendered maze to w.
func (r *UnicodeRenderer) Render(ctx context.Context, w io.Writer, g *maze.Wall4Grid) error {
	tracer := telemetry.Tracer("render")
	_, span := tracer.Start(ctx, "render."+r.style.String())
	defer span.End()

	out := r.RenderString(g)
	span.SetAttributes(
		attribute.Int("maze.width", g.Width()),
		attribute.Int("maze.height", g.Height()),
		attribute.Int("render.bytes", len(out)),
	)

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(out); err != nil {
		span.RecordError(err)
		return fmt.Errorf("write %s maze: %w", r.style, err)
	}
	if err := bw.Flush(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("write %s maze: %w", r.style, err)
	}
	return nil
}
