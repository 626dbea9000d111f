package geom

import "github.com/katalvlaran/gmath"

// Rect is an axis-aligned rectangle stored as its four edge coordinates.
// The y-axis grows downward, so Top <= Bottom for a valid rectangle.
type Rect[T gmath.Float] struct {
	Top, Left, Bottom, Right T
}

// R constructs a Rect directly from its edge coordinates.
func R[T gmath.Float](top, left, bottom, right T) Rect[T] {
	return Rect[T]{Top: top, Left: left, Bottom: bottom, Right: right}
}

// RectOf constructs the Rect covering s starting at the top-left corner.
func RectOf[T gmath.Float](topLeft Point2[T], s Size2[T]) Rect[T] {
	return Rect[T]{
		Top:    topLeft.Y(),
		Left:   topLeft.X(),
		Bottom: topLeft.Y() + s.Height(),
		Right:  topLeft.X() + s.Width(),
	}
}

// Width returns the horizontal extent; negative when Right < Left.
func (r Rect[T]) Width() T { return r.Right - r.Left }

// Height returns the vertical extent; negative when Bottom < Top.
func (r Rect[T]) Height() T { return r.Bottom - r.Top }

// Size returns the rectangle's extent.
func (r Rect[T]) Size() Size2[T] { return Size2[T]{r.Width(), r.Height()} }

// TopLeft returns the top-left corner.
func (r Rect[T]) TopLeft() Point2[T] { return Point2[T]{r.Left, r.Top} }

// TopRight returns the top-right corner.
func (r Rect[T]) TopRight() Point2[T] { return Point2[T]{r.Right, r.Top} }

// BottomLeft returns the bottom-left corner.
func (r Rect[T]) BottomLeft() Point2[T] { return Point2[T]{r.Left, r.Bottom} }

// BottomRight returns the bottom-right corner.
func (r Rect[T]) BottomRight() Point2[T] { return Point2[T]{r.Right, r.Bottom} }

// Valid reports whether the rectangle has positive width and height.
func (r Rect[T]) Valid() bool { return r.Width() > 0 && r.Height() > 0 }

// Offset returns the rectangle translated by the size's extents.
func (r Rect[T]) Offset(s Size2[T]) Rect[T] {
	return Rect[T]{
		Top:    r.Top + s.Height(),
		Left:   r.Left + s.Width(),
		Bottom: r.Bottom + s.Height(),
		Right:  r.Right + s.Width(),
	}
}

// Inset returns the rectangle shrunk by the size's extents on every edge:
// width on the left/right edges, height on the top/bottom edges.
func (r Rect[T]) Inset(s Size2[T]) Rect[T] {
	return r.InsetEdges(s.Height(), s.Width(), s.Height(), s.Width())
}

// InsetEdges returns the rectangle with each edge moved inward by the
// given amount. Negative amounts move the edge outward.
func (r Rect[T]) InsetEdges(top, left, bottom, right T) Rect[T] {
	return Rect[T]{
		Top:    r.Top + top,
		Left:   r.Left + left,
		Bottom: r.Bottom - bottom,
		Right:  r.Right - right,
	}
}

// Pad returns the rectangle grown by the size's extents on every edge,
// the inverse of Inset.
func (r Rect[T]) Pad(s Size2[T]) Rect[T] {
	return r.InsetEdges(-s.Height(), -s.Width(), -s.Height(), -s.Width())
}

// PadEdges returns the rectangle with each edge moved outward by the
// given amount.
func (r Rect[T]) PadEdges(top, left, bottom, right T) Rect[T] {
	return r.InsetEdges(-top, -left, -bottom, -right)
}

// Intersection returns the overlap of the two rectangles. When they do
// not overlap the result is not Valid.
func (r Rect[T]) Intersection(o Rect[T]) Rect[T] {
	return Rect[T]{
		Top:    max(r.Top, o.Top),
		Left:   max(r.Left, o.Left),
		Bottom: min(r.Bottom, o.Bottom),
		Right:  min(r.Right, o.Right),
	}
}

// Intersects reports whether the two rectangles overlap in a region of
// positive area.
func (r Rect[T]) Intersects(o Rect[T]) bool { return r.Intersection(o).Valid() }
