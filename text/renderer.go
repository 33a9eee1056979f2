package text

import (
	"fmt"
	"unsafe"

	"github.com/barktree707/magnum"
	"github.com/barktree707/magnum/gpubuf"
)

// VertexStride is the byte size of one Vertex in a vertex buffer.
const VertexStride = int(unsafe.Sizeof(Vertex{}))

// RendererState tracks where a Renderer is in its reserve/draw lifecycle.
type RendererState uint8

const (
	// StateUnconfigured means no buffers are reserved. Draw fails.
	StateUnconfigured RendererState = iota

	// StateReserved means buffers exist but hold no glyphs yet.
	StateReserved

	// StateRendered means the vertex buffer holds the last drawn text.
	StateRendered
)

// String returns the state name.
func (s RendererState) String() string {
	switch s {
	case StateUnconfigured:
		return "Unconfigured"
	case StateReserved:
		return "Reserved"
	case StateRendered:
		return "Rendered"
	default:
		return unknownStr
	}
}

// Mesh bundles everything needed to draw the renderer's current text:
// the two buffers, the index type and how many indices are live.
type Mesh struct {
	VertexBuffer gpubuf.BufferID
	IndexBuffer  gpubuf.BufferID
	IndexType    IndexType
	IndexCount   int
}

type rendererConfig struct {
	device    gpubuf.Device
	alignment Alignment
}

// RendererOption configures a Renderer at construction.
type RendererOption func(*rendererConfig)

// WithDevice makes the renderer allocate its buffers on dev instead of
// the default registered device.
func WithDevice(dev gpubuf.Device) RendererOption {
	return func(c *rendererConfig) { c.device = dev }
}

// WithAlignment sets the alignment applied to every Draw call. The
// default is AlignMiddleCenter.
func WithAlignment(a Alignment) RendererOption {
	return func(c *rendererConfig) { c.alignment = a }
}

// Renderer lays out text into device-resident vertex and index buffers
// and keeps them updated across Draw calls. Buffer capacity is fixed by
// Reserve; Draw fails cleanly when the text does not fit, leaving the
// buffers and all queryable state untouched.
//
// The index buffer is filled once per Reserve and never rewritten, since
// quad indices depend only on the glyph slot, not on the text. Draw only
// uploads vertices.
//
// A Renderer is not safe for concurrent use. Independent renderers may
// share a Device and read-only Font and GlyphCache.
type Renderer struct {
	font      Font
	cache     GlyphCache
	fontSize  float32
	alignment Alignment

	device   gpubuf.Device
	strategy writeStrategy

	state        RendererState
	capacity     uint32
	glyphCount   uint32
	indexType    IndexType
	vertexBuffer gpubuf.BufferID
	indexBuffer  gpubuf.BufferID
	rect         magnum.Rect
}

// NewRenderer creates a renderer drawing text of the given size with
// font, resolving glyphs through cache. Without WithDevice the default
// registered gpubuf device is used; if none is registered, ErrNoDevice
// is returned.
//
// The device's write path is probed once here. Falling back from ranged
// to whole-buffer mapping logs a warning; devices without any mapping
// silently use queued writes through a host-side shadow copy.
func NewRenderer(font Font, cache GlyphCache, size float32, opts ...RendererOption) (*Renderer, error) {
	cfg := rendererConfig{alignment: AlignMiddleCenter}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.device == nil {
		cfg.device = gpubuf.Default()
	}
	if cfg.device == nil {
		return nil, ErrNoDevice
	}

	r := &Renderer{
		font:      font,
		cache:     cache,
		fontSize:  size,
		alignment: cfg.alignment,
		device:    cfg.device,
		strategy:  chooseWriteStrategy(cfg.device),
	}
	magnum.Logger().Debug("text renderer created",
		"device", cfg.device.Name(),
		"writeStrategy", r.strategy.name(),
		"fontSize", size)
	return r, nil
}

// Reserve allocates buffers for up to capacity glyphs, destroying any
// previously reserved ones. The index buffer is prefilled for the whole
// capacity and the glyph count resets to zero, so the next Draw starts
// from a clean slate. Reserving the same capacity again still
// reallocates.
//
// The hints let callers flag how often each buffer changes; vertices are
// typically gpubuf.UsageHintDynamic and indices gpubuf.UsageHintStatic.
//
// A zero capacity releases the buffers while keeping the renderer
// drawable for empty text. If allocation fails the renderer reverts to
// StateUnconfigured.
func (r *Renderer) Reserve(capacity uint32, vertexHint, indexHint gpubuf.UsageHint) error {
	indexType := IndexTypeFor(capacity * 4)
	vertexSize := uint64(capacity) * 4 * uint64(VertexStride)
	indexSize := uint64(capacity) * 6 * uint64(indexType.Size())

	if max := r.device.MaxBufferSize(); max > 0 {
		if vertexSize > max {
			return &BufferTooLargeError{Size: vertexSize, Max: max}
		}
		if indexSize > max {
			return &BufferTooLargeError{Size: indexSize, Max: max}
		}
	}

	r.releaseBuffers()
	r.capacity = capacity
	r.glyphCount = 0
	r.indexType = indexType
	r.rect = magnum.Rect{}
	r.state = StateReserved

	if capacity == 0 {
		return nil
	}

	vb, err := r.device.CreateBuffer(&gpubuf.BufferDescriptor{
		Label: "text-vertices",
		Size:  vertexSize,
		Usage: gpubuf.BufferUsageVertex | gpubuf.BufferUsageCopyDst | r.strategy.usage(),
		Hint:  vertexHint,
	})
	if err != nil {
		r.state = StateUnconfigured
		r.capacity = 0
		return fmt.Errorf("text: reserving vertex buffer: %w", err)
	}
	ib, err := r.device.CreateBuffer(&gpubuf.BufferDescriptor{
		Label: "text-indices",
		Size:  indexSize,
		Usage: gpubuf.BufferUsageIndex | gpubuf.BufferUsageCopyDst | r.strategy.usage(),
		Hint:  indexHint,
	})
	if err != nil {
		r.device.DestroyBuffer(vb)
		r.strategy.discard(vb)
		r.state = StateUnconfigured
		r.capacity = 0
		return fmt.Errorf("text: reserving index buffer: %w", err)
	}
	r.vertexBuffer = vb
	r.indexBuffer = ib

	indexData, _ := QuadIndices(capacity)
	if err := r.strategy.write(ib, 0, indexData); err != nil {
		r.releaseBuffers()
		r.state = StateUnconfigured
		r.capacity = 0
		return fmt.Errorf("text: prefilling index buffer: %w", err)
	}

	magnum.Logger().Debug("text buffers reserved",
		"capacity", capacity,
		"indexType", indexType,
		"vertexBytes", vertexSize,
		"indexBytes", indexSize)
	return nil
}

// Draw lays out str and uploads the resulting vertices, replacing the
// previously drawn text. The glyph count, bounding rectangle and mesh
// reflect the new text afterwards.
//
// Fails with ErrNotReserved before any Reserve, and with CapacityError
// when the shaped glyph count exceeds the reserved capacity; in both
// cases the buffers and queryable state keep their previous contents.
func (r *Renderer) Draw(str string) error {
	if r.state == StateUnconfigured {
		return ErrNotReserved
	}

	vertices, rect, err := RenderText(r.font, r.cache, r.fontSize, str, r.alignment)
	if err != nil {
		return err
	}

	glyphCount := uint32(len(vertices) / 4)
	if glyphCount > r.capacity {
		return &CapacityError{Capacity: r.capacity, GlyphCount: glyphCount}
	}

	if glyphCount > 0 {
		if err := r.strategy.write(r.vertexBuffer, 0, vertexBytes(vertices)); err != nil {
			return fmt.Errorf("text: writing vertex buffer: %w", err)
		}
	}

	r.glyphCount = glyphCount
	r.rect = rect
	r.state = StateRendered
	return nil
}

// Release destroys the reserved buffers and returns the renderer to
// StateUnconfigured. The device is borrowed, not owned, so it stays
// open. Releasing an unconfigured renderer is a no-op.
func (r *Renderer) Release() {
	r.releaseBuffers()
	r.capacity = 0
	r.glyphCount = 0
	r.indexType = IndexTypeU8
	r.rect = magnum.Rect{}
	r.state = StateUnconfigured
}

func (r *Renderer) releaseBuffers() {
	if r.vertexBuffer != gpubuf.InvalidID {
		r.device.DestroyBuffer(r.vertexBuffer)
		r.strategy.discard(r.vertexBuffer)
		r.vertexBuffer = gpubuf.InvalidID
	}
	if r.indexBuffer != gpubuf.InvalidID {
		r.device.DestroyBuffer(r.indexBuffer)
		r.strategy.discard(r.indexBuffer)
		r.indexBuffer = gpubuf.InvalidID
	}
}

// State returns the renderer's lifecycle state.
func (r *Renderer) State() RendererState { return r.state }

// Capacity returns the glyph capacity set by the last Reserve.
func (r *Renderer) Capacity() uint32 { return r.capacity }

// GlyphCount returns the number of glyphs in the last drawn text.
func (r *Renderer) GlyphCount() uint32 { return r.glyphCount }

// FontSize returns the size text is laid out at, in the same units as
// glyph positions.
func (r *Renderer) FontSize() float32 { return r.fontSize }

// Rectangle returns the bounding rectangle of the last drawn text,
// aligned the same way as the vertices. Zero before the first Draw.
func (r *Renderer) Rectangle() magnum.Rect { return r.rect }

// IndexType returns the index width chosen for the reserved capacity.
func (r *Renderer) IndexType() IndexType { return r.indexType }

// IndexCount returns the number of live indices, six per drawn glyph.
func (r *Renderer) IndexCount() int { return int(r.glyphCount) * 6 }

// VertexBuffer returns the id of the reserved vertex buffer, or
// gpubuf.InvalidID when unreserved.
func (r *Renderer) VertexBuffer() gpubuf.BufferID { return r.vertexBuffer }

// IndexBuffer returns the id of the reserved index buffer, or
// gpubuf.InvalidID when unreserved.
func (r *Renderer) IndexBuffer() gpubuf.BufferID { return r.indexBuffer }

// Mesh returns the drawable state in one bundle.
func (r *Renderer) Mesh() Mesh {
	return Mesh{
		VertexBuffer: r.vertexBuffer,
		IndexBuffer:  r.indexBuffer,
		IndexType:    r.indexType,
		IndexCount:   r.IndexCount(),
	}
}

// vertexBytes reinterprets the vertex slice as raw bytes for upload.
// The layout is plain: two float32 pairs, no padding.
func vertexBytes(vertices []Vertex) []byte {
	if len(vertices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), len(vertices)*VertexStride)
}
