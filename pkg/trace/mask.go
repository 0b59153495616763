package trace

// Mask is an owned W×H grid of booleans. Bits can only be set, never cleared,
// which makes the scratched state of a session monotonic by construction.
type Mask struct {
	width  int
	height int
	bits   []bool
	count  int
}

// NewMask returns an all-false mask. Non-positive sizes yield an empty mask.
func NewMask(width, height int) *Mask {
	if width <= 0 || height <= 0 {
		return &Mask{}
	}
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// InBounds reports whether (x, y) lies inside the mask.
func (m *Mask) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// Get returns the bit at (x, y). Out-of-bounds positions read as false.
func (m *Mask) Get(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.bits[y*m.width+x]
}

// Set marks (x, y) and reports whether the bit was newly set.
// Out-of-bounds positions are ignored.
func (m *Mask) Set(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	i := y*m.width + x
	if m.bits[i] {
		return false
	}
	m.bits[i] = true
	m.count++
	return true
}

// Count returns the number of set bits.
func (m *Mask) Count() int { return m.count }

// Each calls fn for every set bit in row-major order.
func (m *Mask) Each(fn func(x, y int)) {
	for i, set := range m.bits {
		if set {
			fn(i%m.width, i/m.width)
		}
	}
}

// Release drops the backing buffer. The count is kept so that the final
// progress of a finished session can still be reported.
func (m *Mask) Release() {
	m.bits = nil
	m.width = 0
	m.height = 0
}
