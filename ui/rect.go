package ui

// Rect is an origin plus extent on the cell grid.
type Rect struct {
	X, Y, W, H int
}

// Right returns the first x past the rect.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first y past the rect.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether (x,y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampRect clamps the requested (x,y,w,h) to parent. Returns false when
// the origin lies outside parent or the clamped extent is empty; every
// per-cell write in a panel routes through this.
func ClampRect(parent Rect, x, y, w, h int) (Rect, bool) {
	if !parent.Contains(x, y) || w <= 0 || h <= 0 {
		return Rect{}, false
	}
	if x+w > parent.Right() {
		w = parent.Right() - x
	}
	if y+h > parent.Bottom() {
		h = parent.Bottom() - y
	}
	if w <= 0 || h <= 0 {
		return Rect{}, false
	}
	return Rect{X: x, Y: y, W: w, H: h}, true
}

// Inset shrinks the rect by margin on all sides. Collapses to an empty
// rect when the margin eats the whole extent.
func (r Rect) Inset(margin int) Rect {
	out := Rect{X: r.X + margin, Y: r.Y + margin, W: r.W - 2*margin, H: r.H - 2*margin}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}
