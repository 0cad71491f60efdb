// Package scratch tracks how much of a scratch-off cover has been erased.
// The covered value is always available to the page; the mask only decides
// when the cover fades away.
package scratch

// DefaultBrush is the brush radius in pixels.
const DefaultBrush = 25

// DefaultThreshold is the cleared fraction at which the cover reveals.
const DefaultThreshold = 0.6

// Mask is a coarse grid over a w by h pixel cover.
type Mask struct {
	cols, rows int
	cell       float64
	threshold  float64
	cells      []bool
	cleared    int
	scratching bool
	revealed   bool
}

// New returns a fully covered mask. Cells are cell pixels square.
func New(w, h, cell int) *Mask {
	if cell <= 0 {
		cell = 10
	}
	cols := max(1, (w+cell-1)/cell)
	rows := max(1, (h+cell-1)/cell)
	return &Mask{
		cols:      cols,
		rows:      rows,
		cell:      float64(cell),
		threshold: DefaultThreshold,
		cells:     make([]bool, cols*rows),
	}
}

// SetThreshold changes the reveal fraction. Values outside (0, 1] are ignored.
func (m *Mask) SetThreshold(f float64) {
	if f > 0 && f <= 1 {
		m.threshold = f
	}
}

func (m *Mask) Begin() { m.scratching = true }

func (m *Mask) End() { m.scratching = false }

func (m *Mask) Scratching() bool { return m.scratching }

// Scratch erases every cell whose centre lies within radius of (x, y). It
// does nothing unless a stroke is in progress, and reports whether the
// cover just became revealed.
func (m *Mask) Scratch(x, y, radius float64) bool {
	if !m.scratching || m.revealed {
		return false
	}
	r2 := radius * radius
	c0 := max(0, int((x-radius)/m.cell))
	c1 := min(m.cols-1, int((x+radius)/m.cell))
	r0 := max(0, int((y-radius)/m.cell))
	r1 := min(m.rows-1, int((y+radius)/m.cell))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx := (float64(col) + 0.5) * m.cell
			cy := (float64(row) + 0.5) * m.cell
			dx, dy := cx-x, cy-y
			if dx*dx+dy*dy > r2 {
				continue
			}
			i := row*m.cols + col
			if !m.cells[i] {
				m.cells[i] = true
				m.cleared++
			}
		}
	}
	if m.Cleared() >= m.threshold {
		m.revealed = true
		return true
	}
	return false
}

// Cleared is the erased fraction of the cover.
func (m *Mask) Cleared() float64 {
	return float64(m.cleared) / float64(len(m.cells))
}

func (m *Mask) Revealed() bool { return m.revealed }
