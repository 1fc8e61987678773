package shapeindex

import "math"

// Shape is a 2D geometric shape that can be stored in an RTree. The index
// itself only ever needs MBR; the richer predicates are consulted when leaf
// entries are tested during a search.
type Shape interface {
	// MBR gives the minimum bounding rectangle of the shape.
	MBR() BBox
	// Intersects checks whether the shape overlaps other. For Disk and
	// Polygon this is a conservative MBR-based test: it never reports a
	// false negative, but may report shapes as overlapping when only
	// their bounding boxes do.
	Intersects(other Shape) bool
	// Contains checks whether the shape entirely covers other.
	Contains(other Shape) bool
	// Area gives the area of the shape.
	Area() float64
}

// Rect is a rectangular shape. It is its own minimum bounding rectangle.
type Rect struct {
	Box BBox
}

// NewRect creates a rectangle from its corner coordinates.
func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{Box: BBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}}
}

// MBR gives the rectangle itself.
func (r Rect) MBR() BBox {
	return r.Box
}

// Intersects checks for overlap with the other shape's bounding box.
func (r Rect) Intersects(other Shape) bool {
	return r.Box.Intersects(other.MBR())
}

// Contains checks whether the other shape's bounding box lies within the
// rectangle.
func (r Rect) Contains(other Shape) bool {
	return r.Box.Contains(other.MBR())
}

// Area gives the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Box.Area()
}

// Disk is a circular shape given by its center and radius.
type Disk struct {
	CenterX float64
	CenterY float64
	Radius  float64
}

// MBR gives the square circumscribing the disk.
func (d Disk) MBR() BBox {
	return BBox{
		MinX: d.CenterX - d.Radius,
		MinY: d.CenterY - d.Radius,
		MaxX: d.CenterX + d.Radius,
		MaxY: d.CenterY + d.Radius,
	}
}

// Intersects checks for overlap between the disk's bounding box and the other
// shape's bounding box. This deliberately over-approximates the true
// disk-versus-box test; tightening it would shrink search result sets.
func (d Disk) Intersects(other Shape) bool {
	return d.MBR().Intersects(other.MBR())
}

// Contains checks whether the other shape's bounding box lies entirely within
// the disk. This is exact: the farthest corner of the box must be within the
// radius.
func (d Disk) Contains(other Shape) bool {
	bb := other.MBR()
	dx := math.Max(math.Abs(bb.MinX-d.CenterX), math.Abs(bb.MaxX-d.CenterX))
	dy := math.Max(math.Abs(bb.MinY-d.CenterY), math.Abs(bb.MaxY-d.CenterY))
	return dx*dx+dy*dy <= d.Radius*d.Radius
}

// Area gives the area of the disk.
func (d Disk) Area() float64 {
	return math.Pi * d.Radius * d.Radius
}

// Point is a vertex of a Polygon.
type Point struct {
	X, Y float64
}

// Polygon is a shape given by an ordered vertex ring.
type Polygon struct {
	Points []Point
}

// MBR gives the componentwise extremum of the polygon's vertices.
func (p Polygon) MBR() BBox {
	if len(p.Points) == 0 {
		return BBox{}
	}
	bb := BBox{
		MinX: p.Points[0].X, MinY: p.Points[0].Y,
		MaxX: p.Points[0].X, MaxY: p.Points[0].Y,
	}
	for _, pt := range p.Points[1:] {
		bb.MinX = math.Min(bb.MinX, pt.X)
		bb.MinY = math.Min(bb.MinY, pt.Y)
		bb.MaxX = math.Max(bb.MaxX, pt.X)
		bb.MaxY = math.Max(bb.MaxY, pt.Y)
	}
	return bb
}

// Intersects checks for overlap between the polygon's bounding box and the
// other shape's bounding box (conservative).
func (p Polygon) Intersects(other Shape) bool {
	return p.MBR().Intersects(other.MBR())
}

// Contains checks whether the other shape's bounding box lies within the
// polygon's bounding box (conservative).
func (p Polygon) Contains(other Shape) bool {
	return p.MBR().Contains(other.MBR())
}

// Area gives the area enclosed by the vertex ring, computed with the shoelace
// formula. Vertex order does not matter.
func (p Polygon) Area() float64 {
	var sum float64
	n := len(p.Points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.Points[i].X*p.Points[j].Y - p.Points[j].X*p.Points[i].Y
	}
	return math.Abs(sum) / 2
}

// shapeKind gives the tag used for a shape in the introspection output.
func shapeKind(s Shape) string {
	switch s.(type) {
	case Rect:
		return "Rect"
	case Disk:
		return "Disk"
	case Polygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}
