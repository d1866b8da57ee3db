package render

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/amaze/internal/maze"
	"github.com/samdwyer/amaze/internal/telemetry"
)

// Default PPM colours.
var (
	DefaultWallColor = tcell.NewRGBColor(12, 12, 72)
	DefaultPathColor = tcell.NewRGBColor(255, 255, 255)
)

// ImageRenderer writes a maze as a plain-text PPM or PBM image. Each cell
// becomes the centre of a 2x2 block, so a w x h maze is (2w+1) x (2h+1) pixels.
type ImageRenderer struct {
	format Style
	wall   tcell.Color
	path   tcell.Color
}

// NewImageRenderer creates a renderer for PPM or PBM with the default colours.
func NewImageRenderer(format Style) (*ImageRenderer, error) {
	if !format.IsImage() {
		return nil, fmt.Errorf("%w: %s is not an image format", ErrInvalidStyle, format)
	}
	return &ImageRenderer{format: format, wall: DefaultWallColor, path: DefaultPathColor}, nil
}

// SetColors changes the wall and path colours. PBM output ignores them.
func (r *ImageRenderer) SetColors(wall, path tcell.Color) {
	r.wall = wall
	r.path = path
}

// Style returns the renderer's format.
func (r *ImageRenderer) Style() Style {
	return r.format
}

// Pixels returns the image as rows of booleans, true where a wall is drawn.
func Pixels(g *maze.Wall4Grid) [][]bool {
	width := g.Width()*2 + 1
	height := g.Height()*2 + 1

	pixels := make([][]bool, height)
	for y := range pixels {
		pixels[y] = make([]bool, width)
		for x := range pixels[y] {
			pixels[y][x] = true
		}
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			walls := g.At(maze.NewCoord(x, y))
			px, py := x*2+1, y*2+1
			pixels[py][px] = false

			// Openings on the outer edge are never carved.
			if !walls.Contains(maze.North) && y > 0 {
				pixels[py-1][px] = false
			}
			if !walls.Contains(maze.South) && y < g.Height()-1 {
				pixels[py+1][px] = false
			}
			if !walls.Contains(maze.East) && x < g.Width()-1 {
				pixels[py][px+1] = false
			}
			if !walls.Contains(maze.West) && x > 0 {
				pixels[py][px-1] = false
			}
		}
	}
	return pixels
}

// Render writes the image to w.
func (r *ImageRenderer) Render(ctx context.Context, w io.Writer, g *maze.Wall4Grid) error {
	tracer := telemetry.Tracer("render")
	_, span := tracer.Start(ctx, "render."+r.format.String())
	defer span.End()

	pixels := Pixels(g)
	span.SetAttributes(
		attribute.Int("maze.width", g.Width()),
		attribute.Int("maze.height", g.Height()),
		attribute.Int("render.image_width", len(pixels[0])),
		attribute.Int("render.image_height", len(pixels)),
	)

	bw := bufio.NewWriter(w)
	if r.format == PPM {
		r.writePPM(bw, pixels)
	} else {
		writePBM(bw, pixels)
	}
	if err := bw.Flush(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("write %s image: %w", r.format, err)
	}
	return nil
}

// writePPM breaks lines after every fifth pixel and at the end of each row.
// bufio.Writer keeps the first error and reports it from Flush.
func (r *ImageRenderer) writePPM(w *bufio.Writer, pixels [][]bool) {
	fmt.Fprintf(w, "P3\n%d %d\n255\n", len(pixels[0]), len(pixels))

	wr, wg, wb := r.wall.RGB()
	pr, pg, pb := r.path.RGB()
	for _, row := range pixels {
		for i, wall := range row {
			if wall {
				fmt.Fprintf(w, "%d %d %d ", wr, wg, wb)
			} else {
				fmt.Fprintf(w, "%d %d %d ", pr, pg, pb)
			}
			if i%5 == 4 {
				w.WriteByte('\n')
			}
		}
		w.WriteByte('\n')
	}
}

func writePBM(w *bufio.Writer, pixels [][]bool) {
	fmt.Fprintf(w, "P1\n%d %d\n", len(pixels[0]), len(pixels))
	for _, row := range pixels {
		for _, wall := range row {
			if wall {
				w.WriteString("1 ")
			} else {
				w.WriteString("0 ")
			}
		}
		w.WriteByte('\n')
	}
}
