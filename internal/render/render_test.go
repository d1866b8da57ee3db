package render

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/amaze/internal/generator"
	"github.com/samdwyer/amaze/internal/maze"
)

// gridFromHex rebuilds a grid from rows of door digits by carving every
// east and south door. The rows must describe symmetric passages.
func gridFromHex(t *testing.T, rows ...string) *maze.Wall4Grid {
	t.Helper()
	g := maze.NewWall4Grid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			bits, err := strconv.ParseUint(string(ch), 16, 8)
			if err != nil {
				t.Fatalf("bad digit %q: %v", ch, err)
			}
			doors := maze.Door4(bits)
			c := maze.NewCoord(x, y)
			if doors.Contains(maze.East) {
				g.RemoveWallBetween(c, maze.NewCoord(x+1, y))
			}
			if doors.Contains(maze.South) {
				g.RemoveWallBetween(c, maze.NewCoord(x, y+1))
			}
		}
	}
	for y, row := range rows {
		for x := range row {
			if got := strings.ToUpper(strconv.FormatUint(uint64(g.DoorsAt(maze.NewCoord(x, y)).Bits()), 16)); got != row[x:x+1] {
				t.Fatalf("fixture is not symmetric at (%d,%d): carved %s, want %s", x, y, got, row[x:x+1])
			}
		}
	}
	return g
}

func renderString(t *testing.T, style Style, lineBreaks bool, g *maze.Wall4Grid) string {
	t.Helper()
	r, err := NewUnicodeRenderer(style, lineBreaks)
	if err != nil {
		t.Fatalf("NewUnicodeRenderer(%s): %v", style, err)
	}
	var buf bytes.Buffer
	if err := r.Render(context.Background(), &buf, g); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := r.RenderString(g); got != buf.String() {
		t.Errorf("RenderString and Render disagree")
	}
	return buf.String()
}

func TestGlyphTablesAgree(t *testing.T) {
	g := gridFromHex(t, "24ECCA", "5A36A1", "23795A", "795C83", "5CA6CB", "4CD949")

	tests := []struct {
		style Style
		want  string
	}{
		{Heavy, "╻╺┳━━┓\n┗┓┃┏┓╹\n╻┃┣┛┗┓\n┣┛┗━╸┃\n┗━┓┏━┫\n╺━┻┛╺┛\n"},
		{Thin, "╷╶┬──┐\n└┐│┌┐╵\n╷│├┘└┐\n├┘└─╴│\n└─┐┌─┤\n╶─┴┘╶┘\n"},
		{Double, "╥╞╦══╗\n╚╗║╔╗╨\n╥║╠╝╚╗\n╠╝╚═╡║\n╚═╗╔═╣\n╞═╩╝╞╝\n"},
		{Hex, "24ECCA\n5A36A1\n23795A\n795C83\n5CA6CB\n4CD949\n"},
	}

	for _, tt := range tests {
		if got := renderString(t, tt.style, true, g); got != tt.want {
			t.Errorf("%s:\n%s\nwant:\n%s", tt.style, got, tt.want)
		}
	}
}

func TestRenderGeneratedMaze(t *testing.T) {
	gen, err := generator.NewFromSeed(0xdeadbeef)
	if err != nil {
		t.Fatal(err)
	}
	g, err := gen.Generate(context.Background(), 6, 6)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		style Style
		want  string
	}{
		{Heavy, "╻╺┳┓╺┓\n┗━┛┗━┫\n┏━━━┓┃\n┗┓╻┏┛┃\n╻┗┫┗━┛\n┗━┻━━╸\n"},
		{Thin, "╷╶┬┐╶┐\n└─┘└─┤\n┌───┐│\n└┐╷┌┘│\n╷└┤└─┘\n└─┴──╴\n"},
		{Double, "╥╞╦╗╞╗\n╚═╝╚═╣\n╔═══╗║\n╚╗╥╔╝║\n╥╚╣╚═╝\n╚═╩══╡\n"},
		{Hex, "24EA4A\n5C95CB\n6CCCA3\n5A2693\n25B5C9\n5CDCC8\n"},
	}

	for _, tt := range tests {
		if got := renderString(t, tt.style, true, g); got != tt.want {
			t.Errorf("%s:\n%s\nwant:\n%s", tt.style, got, tt.want)
		}
	}
}

func TestRenderWithoutLineBreaks(t *testing.T) {
	g := gridFromHex(t, "24ECCA", "5A36A1", "23795A", "795C83", "5CA6CB", "4CD949")
	if got := renderString(t, Hex, false, g); got != "24ECCA5A36A123795A795C835CA6CB4CD949" {
		t.Errorf("no-break hex = %q", got)
	}
}

func TestFullyWalledGridIsBlank(t *testing.T) {
	g := maze.NewWall4Grid(3, 2)
	if got := renderString(t, Heavy, true, g); got != "   \n   \n" {
		t.Errorf("heavy = %q", got)
	}
	if got := renderString(t, Hex, true, g); got != "000\n000\n" {
		t.Errorf("hex = %q", got)
	}
}

func TestOpenInteriorIsCross(t *testing.T) {
	g := maze.NewWall4Grid(3, 3)
	center := maze.NewCoord(1, 1)
	for _, d := range maze.All.Slice() {
		n, _ := center.Step(d)
		g.RemoveWallBetween(center, n)
	}
	lines := strings.Split(renderString(t, Heavy, true, g), "\n")
	if got := []rune(lines[1])[1]; got != '╋' {
		t.Errorf("centre glyph = %q, want ╋", got)
	}
}

func TestGlyphFallsBackToHeavy(t *testing.T) {
	if got := Glyph(PPM, maze.All); got != '╋' {
		t.Errorf("Glyph(PPM, All) = %q", got)
	}
	if got := Glyph(Thin, maze.North.Join(maze.South)); got != '│' {
		t.Errorf("Glyph(Thin, NS) = %q", got)
	}
}

func renderImage(t *testing.T, r *ImageRenderer, g *maze.Wall4Grid) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Render(context.Background(), &buf, g); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestPBM(t *testing.T) {
	r, err := NewImageRenderer(PBM)
	if err != nil {
		t.Fatal(err)
	}
	got := renderImage(t, r, gridFromHex(t, "4CA", "4C9"))
	want := "P1\n7 5\n" +
		"1 1 1 1 1 1 1 \n" +
		"1 0 0 0 0 0 1 \n" +
		"1 1 1 1 1 0 1 \n" +
		"1 0 0 0 0 0 1 \n" +
		"1 1 1 1 1 1 1 \n"
	if got != want {
		t.Errorf("PBM:\n%q\nwant\n%q", got, want)
	}
}

func TestPPMDefaultColors(t *testing.T) {
	r, err := NewImageRenderer(PPM)
	if err != nil {
		t.Fatal(err)
	}
	got := renderImage(t, r, maze.NewWall4Grid(1, 1))
	want := "P3\n3 3\n255\n" +
		"12 12 72 12 12 72 12 12 72 \n" +
		"12 12 72 255 255 255 12 12 72 \n" +
		"12 12 72 12 12 72 12 12 72 \n"
	if got != want {
		t.Errorf("PPM:\n%q\nwant\n%q", got, want)
	}
}

func TestPPMCustomColorsAndLineBreaks(t *testing.T) {
	r, err := NewImageRenderer(PPM)
	if err != nil {
		t.Fatal(err)
	}
	r.SetColors(tcell.NewRGBColor(1, 2, 3), tcell.NewRGBColor(4, 5, 6))

	// A 2x2 maze is five pixels wide, so each row also ends right after
	// a fifth-pixel break.
	got := renderImage(t, r, gridFromHex(t, "6A", "59"))
	want := "P3\n5 5\n255\n" +
		"1 2 3 1 2 3 1 2 3 1 2 3 1 2 3 \n\n" +
		"1 2 3 4 5 6 4 5 6 4 5 6 1 2 3 \n\n" +
		"1 2 3 4 5 6 1 2 3 4 5 6 1 2 3 \n\n" +
		"1 2 3 4 5 6 4 5 6 4 5 6 1 2 3 \n\n" +
		"1 2 3 1 2 3 1 2 3 1 2 3 1 2 3 \n\n"
	if got != want {
		t.Errorf("PPM:\n%q\nwant\n%q", got, want)
	}
}

func TestPixelsDimensions(t *testing.T) {
	p := Pixels(maze.NewWall4Grid(4, 2))
	if len(p) != 5 || len(p[0]) != 9 {
		t.Errorf("Pixels size = %dx%d, want 9x5", len(p[0]), len(p))
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name string
		want Style
	}{
		{"heavy", Heavy},
		{"HEAVY", Heavy},
		{"Thin", Thin},
		{"double", Double},
		{"hex", Hex},
		{"ppm", PPM},
		{" pbm ", PBM},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseStyle(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}

	for _, name := range []string{"", "bold", "png"} {
		if _, err := ParseStyle(name); !errors.Is(err, ErrInvalidStyle) {
			t.Errorf("ParseStyle(%q) error = %v, want ErrInvalidStyle", name, err)
		}
	}
}

func TestNewPicksRendererKind(t *testing.T) {
	for _, s := range []Style{Heavy, Thin, Double, Hex, PPM, PBM} {
		r, err := New(s, true)
		if err != nil {
			t.Fatalf("New(%s): %v", s, err)
		}
		if r.Style() != s {
			t.Errorf("New(%s).Style() = %s", s, r.Style())
		}
		_, isImage := r.(*ImageRenderer)
		if isImage != s.IsImage() {
			t.Errorf("New(%s) returned %T", s, r)
		}
	}

	if _, err := NewUnicodeRenderer(PPM, true); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("NewUnicodeRenderer(PPM) error = %v", err)
	}
	if _, err := NewImageRenderer(Heavy); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("NewImageRenderer(Heavy) error = %v", err)
	}
}

func TestStyleString(t *testing.T) {
	if Heavy.String() != "heavy" || PBM.String() != "pbm" {
		t.Errorf("names = %s, %s", Heavy, PBM)
	}
	if Style(42).String() != "Style(42)" {
		t.Errorf("out of range = %s", Style(42))
	}
	if DefaultStyle != Heavy {
		t.Errorf("DefaultStyle = %s", DefaultStyle)
	}
}
