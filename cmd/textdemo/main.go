// Command textdemo lays out text with the magnum text engine and prints
// the resulting mesh.
//
// The engine produces geometry, not pixels: glyph bitmaps are expected to
// live in an atlas populated by external tooling. The demo stands in for
// that tooling with a synthetic atlas that gives every shaped glyph a
// fixed-size cell, which is enough to show positions, texture coordinates
// and bounds for real shaped text.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/barktree707/magnum"
	"github.com/barktree707/magnum/gpubuf"
	_ "github.com/barktree707/magnum/gpubuf/memory"
	_ "github.com/barktree707/magnum/gpubuf/native"
	"github.com/barktree707/magnum/text"
)

var alignments = map[string]text.Alignment{
	"line-left":     text.AlignLineLeft,
	"line-center":   text.AlignLineCenter,
	"line-right":    text.AlignLineRight,
	"bottom-left":   text.AlignBottomLeft,
	"middle-center": text.AlignMiddleCenter,
	"top-left":      text.AlignTopLeft,
	"top-right":     text.AlignTopRight,
}

func main() {
	var (
		input   = flag.String("text", `Hello, world!\nshaped and aligned`, `text to lay out; \n splits lines`)
		size    = flag.Float64("size", 24, "font size in points")
		align   = flag.String("align", "middle-center", "alignment: "+strings.Join(alignmentNames(), ", "))
		dump    = flag.Bool("dump", false, "print every glyph quad")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		magnum.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	alignment, ok := alignments[*align]
	if !ok {
		log.Fatalf("Unknown alignment %q; have %s", *align, strings.Join(alignmentNames(), ", "))
	}
	str := strings.ReplaceAll(*input, `\n`, "\n")

	font, err := text.NewGoTextFont(goregular.TTF, float32(*size))
	if err != nil {
		log.Fatalf("Failed to open font: %v", err)
	}
	defer func() {
		_ = font.Close()
	}()

	cache, err := buildCache(font, str)
	if err != nil {
		log.Fatalf("Failed to build glyph cache: %v", err)
	}

	// Default() prefers a real GPU when the native backend managed to
	// initialize, and falls back to the in-memory device otherwise.
	dev := gpubuf.Default()
	if dev == nil {
		log.Fatal("No buffer device available")
	}
	defer dev.Close()

	renderer, err := text.NewRenderer(font, cache, float32(*size),
		text.WithDevice(dev), text.WithAlignment(alignment))
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Release()

	// One glyph per rune is an upper bound; ligatures only shrink it.
	capacity := uint32(len([]rune(str)))
	if err := renderer.Reserve(capacity, gpubuf.UsageHintDynamic, gpubuf.UsageHintStatic); err != nil {
		log.Fatalf("Failed to reserve buffers: %v", err)
	}
	if err := renderer.Draw(str); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	mesh := renderer.Mesh()
	rect := renderer.Rectangle()
	fmt.Printf("laid out %d glyphs on the %s device: %d vertices, %d %v indices\n",
		renderer.GlyphCount(), dev.Name(), renderer.GlyphCount()*4, mesh.IndexCount, mesh.IndexType)
	fmt.Printf("bounds (%.2f, %.2f) to (%.2f, %.2f), %.2f x %.2f\n",
		rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y, rect.Width(), rect.Height())

	if *dump {
		dumpQuads(font, cache, float32(*size), str, alignment)
	}
}

func alignmentNames() []string {
	return slices.Sorted(maps.Keys(alignments))
}

// buildCache shapes every line once and places each glyph id in its own
// cell of a synthetic atlas.
func buildCache(font *text.GoTextFont, str string) (*text.StaticCache, error) {
	cellW := int(font.Size() * 0.75)
	cellH := int(font.Ascent() - font.Descent())
	const atlasSize = 1024

	cache, err := text.NewStaticCache(atlasSize, atlasSize, 1)
	if err != nil {
		return nil, err
	}
	cache.AddFont(font)

	shaper := font.CreateShaper()
	var x, y int
	for _, line := range strings.Split(str, "\n") {
		n, err := shaper.Shape(line)
		if err != nil {
			return nil, err
		}
		ids := make([]text.GlyphID, n)
		shaper.GlyphIDsInto(ids)

		for _, id := range ids {
			if cache.Glyph(font, id) != (text.CachedGlyph{}) {
				continue
			}
			if x+cellW > atlasSize {
				x = 0
				y += cellH
			}
			cache.AddGlyph(font, id, text.CachedGlyph{
				Offset: magnum.V2i(0, int32(font.Descent())),
				Rect:   magnum.Recti{Min: magnum.V2i(int32(x), int32(y)), Max: magnum.V2i(int32(x+cellW), int32(y+cellH))},
			})
			x += cellW
		}
	}
	return cache, nil
}

func dumpQuads(font *text.GoTextFont, cache *text.StaticCache, size float32, str string, alignment text.Alignment) {
	positions, texCoords, _, _, err := text.Render(font, cache, size, str, alignment)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	for i := 0; i < len(positions); i += 4 {
		fmt.Printf("quad %3d: (%8.2f, %8.2f)-(%8.2f, %8.2f) tex (%.4f, %.4f)-(%.4f, %.4f)\n",
			i/4,
			positions[i].X, positions[i].Y, positions[i+3].X, positions[i+3].Y,
			texCoords[i].X, texCoords[i].Y, texCoords[i+3].X, texCoords[i+3].Y)
	}
}
