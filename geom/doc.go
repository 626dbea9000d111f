// Package geom provides plain 2D/3D coordinate containers: Point, Size
// and Rect.
//
// The geom package provides:
//
//   - Point2/Point3: positions with coordinate arithmetic against points
//     and sizes, plus conversion to and from the vec package's vectors.
//   - Size2/Size3: extents with width/height/depth accessors.
//   - Rect: a (top, left, bottom, right) interval with offset, inset, pad
//     and intersection arithmetic; a Rect is valid iff width and height
//     are both positive.
//
// All types are immutable values: Offset, Inset, Pad and friends return a
// new Rect rather than mutating the receiver. The mat package's transform
// factories (Scale2D, Orthographic, TransformPoint) consume these types.
package geom
