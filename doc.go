// Package magnum provides text layout and GPU quad-geometry generation.
//
// # Overview
//
// magnum turns shaped glyph runs into positioned, aligned quad geometry
// (vertex + index buffers) ready for GPU rendering, and manages
// capacity-bounded buffer pairs that are re-rendered incrementally without
// reallocation. The root package holds the shared geometry value types
// (Vec2, Rect and their integer texel variants) and the library-wide
// logger; the actual engine lives in the sub-packages.
//
// # Quick Start
//
//	import (
//	    "github.com/barktree707/magnum/gpubuf"
//	    _ "github.com/barktree707/magnum/gpubuf/memory"
//	    "github.com/barktree707/magnum/text"
//	)
//
//	font, _ := text.NewGoTextFont(ttfData, 16)
//	cache, _ := text.NewStaticCache(256, 256, 1)
//	// ... populate cache with glyph rectangles ...
//
//	r, _ := text.NewRenderer(font, cache, 32, text.WithAlignment(text.AlignMiddleCenter))
//	r.Reserve(64, gpubuf.UsageHintDynamic, gpubuf.UsageHintStatic)
//	r.Draw("Hello")
//	mesh := r.Mesh() // vertex/index buffer ids + index type, draw-call ready
//
// # Architecture
//
// The library is organized into:
//   - Root package: Vec2/Vec2i, Rect/Recti, slog-based logger
//   - text: line layout, quad building, alignment, index emission, the
//     multi-line assembler and the incremental buffer renderer, plus the
//     Font/Shaper/GlyphCache capability interfaces and a go-text backend
//   - gpubuf: the buffer device abstraction with a pure-Go memory backend
//     and a gogpu/wgpu HAL backend
//
// # Coordinate System
//
// Text geometry uses y-up coordinates: the baseline is y=0, ascent extends
// to positive y, lines stack downward toward negative y. Rect.Min is the
// bottom-left corner.
//
// # Logging
//
// The library is silent by default. Call SetLogger to enable diagnostics;
// sub-packages share the configured logger.
package magnum

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
