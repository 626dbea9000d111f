package vec

// Swizzles select, reorder and extend components at compile time: each
// method names exactly the indices it reads, and exists only on vectors
// large enough to supply them, so an out-of-range selection fails to
// compile rather than panic. The 0/1 suffixes inject fixed constants,
// which is how homogeneous coordinates are built (XY1, XYZ1) and dropped
// (XY, XYZ).

// XX returns (x, x).
func (v Vec2[T]) XX() Vec2[T] { return Vec2[T]{v[0], v[0]} }

// YY returns (y, y).
func (v Vec2[T]) YY() Vec2[T] { return Vec2[T]{v[1], v[1]} }

// YX returns the components swapped.
func (v Vec2[T]) YX() Vec2[T] { return Vec2[T]{v[1], v[0]} }

// XY0 returns (x, y, 0).
func (v Vec2[T]) XY0() Vec3[T] { return Vec3[T]{v[0], v[1], 0} }

// XY1 returns (x, y, 1), the homogeneous form of a 2D position.
func (v Vec2[T]) XY1() Vec3[T] { return Vec3[T]{v[0], v[1], 1} }

// XY01 returns (x, y, 0, 1).
func (v Vec2[T]) XY01() Vec4[T] { return Vec4[T]{v[0], v[1], 0, 1} }

// ZeroOne returns the constant pair (0, 1); the receiver only fixes the
// scalar type.
func (v Vec2[T]) ZeroOne() Vec2[T] { return Vec2[T]{0, 1} }

// ZeroOneXY returns (0, 1, x, y).
func (v Vec2[T]) ZeroOneXY() Vec4[T] { return Vec4[T]{0, 1, v[0], v[1]} }

// XY returns the first two components.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// XZ returns (x, z).
func (v Vec3[T]) XZ() Vec2[T] { return Vec2[T]{v[0], v[2]} }

// YZ returns (y, z).
func (v Vec3[T]) YZ() Vec2[T] { return Vec2[T]{v[1], v[2]} }

// ZYX returns the components reversed.
func (v Vec3[T]) ZYX() Vec3[T] { return Vec3[T]{v[2], v[1], v[0]} }

// XXX returns (x, x, x).
func (v Vec3[T]) XXX() Vec3[T] { return Vec3[T]{v[0], v[0], v[0]} }

// XYZ0 returns (x, y, z, 0), the homogeneous form of a 3D direction.
func (v Vec3[T]) XYZ0() Vec4[T] { return Vec4[T]{v[0], v[1], v[2], 0} }

// XYZ1 returns (x, y, z, 1), the homogeneous form of a 3D position.
func (v Vec3[T]) XYZ1() Vec4[T] { return Vec4[T]{v[0], v[1], v[2], 1} }

// XY returns the first two components.
func (v Vec4[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// XYZ returns the first three components, dropping w.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }

// WZYX returns the components reversed.
func (v Vec4[T]) WZYX() Vec4[T] { return Vec4[T]{v[3], v[2], v[1], v[0]} }
