package qrsymbol

import "strings"

// Matrix is a square grid of modules backed by a single flat array indexed
// by row*side+col. true is a dark module, false a light one. Renderers must
// not reinterpret module values beyond dark/light.
type Matrix struct {
	side    int
	modules []bool
}

// NewMatrix creates an all-light Matrix with the given side length.
func NewMatrix(side int) *Matrix {
	if side < 1 {
		panic("qrsymbol: matrix side must be at least 1")
	}
	return &Matrix{side: side, modules: make([]bool, side*side)}
}

// Side returns the side length in modules.
func (m *Matrix) Side() int { return m.side }

// Get returns the module at column x, row y.
func (m *Matrix) Get(x, y int) bool {
	return m.modules[y*m.side+x]
}

// Set sets the module at column x, row y.
func (m *Matrix) Set(x, y int, dark bool) {
	m.modules[y*m.side+x] = dark
}

// Flip inverts the module at column x, row y.
func (m *Matrix) Flip(x, y int) {
	m.modules[y*m.side+x] = !m.modules[y*m.side+x]
}

// setRegion darkens a rectangular region of modules.
func (m *Matrix) setRegion(left, top, width, height int) {
	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			m.modules[y*m.side+x] = true
		}
	}
}

// Clone returns a deep copy of the Matrix.
func (m *Matrix) Clone() *Matrix {
	modules := make([]bool, len(m.modules))
	copy(modules, m.modules)
	return &Matrix{side: m.side, modules: modules}
}

// Equals reports whether two matrices have identical dimensions and modules.
func (m *Matrix) Equals(other *Matrix) bool {
	if m.side != other.side {
		return false
	}
	for i := range m.modules {
		if m.modules[i] != other.modules[i] {
			return false
		}
	}
	return true
}

// String returns a visual representation using "##" for dark modules.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow(m.side * (2*m.side + 1))
	for y := 0; y < m.side; y++ {
		for x := 0; x < m.side; x++ {
			if m.Get(x, y) {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
