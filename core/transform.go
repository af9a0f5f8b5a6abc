package core

import "math"

// IdentityMatrix is the identity affine matrix.
var IdentityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// ComposeSRT builds the local affine matrix for a posture value.
// Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Scale -> Rotate -> Translate(pos)
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func ComposeSRT(pos Vec2, rotate float64, scale Vec2) [6]float64 {
	sin, cos := math.Sincos(rotate)
	return [6]float64{
		cos * scale.X,
		sin * scale.X,
		-sin * scale.Y,
		cos * scale.Y,
		pos.X,
		pos.Y,
	}
}

// MultiplyAffine multiplies two 2D affine matrices: result = parent * child.
func MultiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// InvertAffine computes the inverse of a 2D affine matrix. ok is false when
// the matrix is singular (determinant ≈ 0, e.g. a zero scale somewhere in
// the parent chain); callers must skip whatever depended on the inverse for
// that frame rather than apply a stale or default transform.
func InvertAffine(m [6]float64) (inv [6]float64, ok bool) {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityMatrix, false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// TransformPoint applies an affine matrix to a point.
func TransformPoint(m [6]float64, p Vec2) Vec2 {
	return Vec2{
		m[0]*p.X + m[2]*p.Y + m[4],
		m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ClampTrans clamps a local-space coordinate component-wise into the valid
// translation range. Idempotent.
func ClampTrans(p Vec2) Vec2 {
	return Vec2{
		clamp(p.X, TransMin, TransMax),
		clamp(p.Y, TransMin, TransMax),
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
