package shapeindex

import "math"

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// Intersects checks whether the two boxes overlap. Touching edges count as
// overlapping (closed-interval semantics).
func (b BBox) Intersects(other BBox) bool {
	return true &&
		(b.MinX <= other.MaxX) && (b.MaxX >= other.MinX) &&
		(b.MinY <= other.MaxY) && (b.MaxY >= other.MinY)
}

// Contains checks whether other lies entirely within b.
func (b BBox) Contains(other BBox) bool {
	return true &&
		(b.MinX <= other.MinX) && (b.MaxX >= other.MaxX) &&
		(b.MinY <= other.MinY) && (b.MaxY >= other.MaxY)
}

// ExpandToInclude gives the smallest bounding box containing both b and other.
func (b BBox) ExpandToInclude(other BBox) BBox {
	return combine(b, other)
}

// Area gives the area of the box. It may be zero for degenerate boxes.
func (b BBox) Area() float64 {
	return area(b)
}

// combine gives the smallest bounding box containing both bbox1 and bbox2.
func combine(bbox1, bbox2 BBox) BBox {
	return BBox{
		MinX: math.Min(bbox1.MinX, bbox2.MinX),
		MinY: math.Min(bbox1.MinY, bbox2.MinY),
		MaxX: math.Max(bbox1.MaxX, bbox2.MaxX),
		MaxY: math.Max(bbox1.MaxY, bbox2.MaxY),
	}
}

// enlargement returns how much additional area the existing BBox would have to
// enlarge by to accommodate the additional BBox.
func enlargement(existing, additional BBox) float64 {
	return area(combine(existing, additional)) - area(existing)
}

func area(bb BBox) float64 {
	return (bb.MaxX - bb.MinX) * (bb.MaxY - bb.MinY)
}
