package qrend

// Layer is an ordered collection of quads drawn together. Layers let a
// host group geometry that changes at different rates: a static backdrop
// uploads once while an animated overlay re-uploads every frame.
//
// Every mutation bumps an internal version counter. The render side
// compares versions to skip re-encoding and re-uploading layers that did
// not change since the last prepare.
type Layer struct {
	label   string
	quads   []Quad
	visible bool
	version uint64
}

// NewLayer creates an empty, visible layer with the given label.
// The label is used in GPU resource labels and log output.
func NewLayer(label string) *Layer {
	return &Layer{label: label, visible: true}
}

// Label returns the layer's label.
func (l *Layer) Label() string { return l.label }

// Len returns the number of quads in the layer.
func (l *Layer) Len() int { return len(l.quads) }

// Quads returns the layer's quads as a read-only view. Mutate quads
// through Layer methods so change tracking sees the update.
func (l *Layer) Quads() []Quad { return l.quads }

// Version returns the layer's change counter. It starts at zero and
// increments on every mutation.
func (l *Layer) Version() uint64 { return l.version }

// Visible reports whether the layer is drawn.
func (l *Layer) Visible() bool { return l.visible }

// SetVisible shows or hides the layer. Hiding does not discard quads or
// GPU buffers, so toggling visibility is cheap.
func (l *Layer) SetVisible(v bool) {
	if l.visible == v {
		return
	}
	l.visible = v
	l.version++
}

// Push appends quads to the layer.
func (l *Layer) Push(quads ...Quad) {
	if len(quads) == 0 {
		return
	}
	l.quads = append(l.quads, quads...)
	l.version++
}

// SetQuads replaces the layer's contents with a copy of quads.
func (l *Layer) SetQuads(quads []Quad) {
	l.quads = append(l.quads[:0], quads...)
	l.version++
}

// Clear removes all quads, keeping the backing storage for reuse.
func (l *Layer) Clear() {
	if len(l.quads) == 0 {
		return
	}
	l.quads = l.quads[:0]
	l.version++
}

// ByteSize returns the encoded size of the layer's vertex data in the
// given input mode.
func (l *Layer) ByteSize(mode InputMode) int {
	if mode == InputModeRects {
		return len(l.quads) * RectInstanceStride
	}
	return len(l.quads) * VerticesPerQuad * CornerVertexStride
}

// AppendVertices appends the layer's encoded vertex data to dst and
// returns the extended slice. Quads encode in insertion order.
func (l *Layer) AppendVertices(dst []byte, mode InputMode) []byte {
	for _, q := range l.quads {
		dst = AppendQuadVertices(dst, q, mode)
	}
	return dst
}
