package render

import (
	"context"
	"io"

	"github.com/samdwyer/amaze/internal/maze"
)

// Renderer writes a finished maze to an output stream.
type Renderer interface {
	Render(ctx context.Context, w io.Writer, g *maze.Wall4Grid) error
	Style() Style
}

// New returns the renderer for style. lineBreaks only affects text styles.
func New(style Style, lineBreaks bool) (Renderer, error) {
	if style.IsImage() {
		return NewImageRenderer(style)
	}
	return NewUnicodeRenderer(style, lineBreaks)
}
