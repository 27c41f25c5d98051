// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is 4x4 matrix organized internally as column matrix,
// matching the layout of a WGSL mat4x4<f32>.
// Element (row, col) is stored at index col*4 + row.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Matrix4FromColumns returns a matrix with the given columns.
func Matrix4FromColumns(c0, c1, c2, c3 Vector4) *Matrix4 {
	m := &Matrix4{}
	c0.ToSlice(m[:], 0)
	c1.ToSlice(m[:], 4)
	c2.ToSlice(m[:], 8)
	c3.ToSlice(m[:], 12)
	return m
}

// Set sets all the elements of this matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0], m[4], m[8], m[12] = n11, n12, n13, n14
	m[1], m[5], m[9], m[13] = n21, n22, n23, n24
	m[2], m[6], m[10], m[14] = n31, n32, n33, n34
	m[3], m[7], m[11], m[15] = n41, n42, n43, n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// At returns the element at the given row and column.
func (m *Matrix4) At(row, col int) float32 {
	return m[col*4+row]
}

// Mul returns this matrix times other matrix (this matrix is on the left).
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			nm[col*4+row] = sum
		}
	}
	return nm
}

// MulVector4 returns this matrix times the given column vector.
func (m *Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulVector2AsPoint transforms the given 2D point with Z = 0 and W = 1,
// returning the result after perspective division.
func (m *Matrix4) MulVector2AsPoint(v Vector2) Vector2 {
	return m.MulVector4(Vector4FromVector2(v)).PerspDiv()
}

// IsEqualTol returns whether every element of this matrix is equal
// to the corresponding element of other within the given tolerance.
func (m *Matrix4) IsEqualTol(other *Matrix4, tol float32) bool {
	for i := range m {
		if !EqualTol(m[i], other[i], tol) {
			return false
		}
	}
	return true
}

// SetOrthographic sets this matrix to an OpenGL style orthographic
// projection, mapping the box bounded by left, right, bottom, top, near
// and far to clip space with depth in [-1, 1].
// Passing bottom > top gives a y-down pixel space.
func (m *Matrix4) SetOrthographic(left, right, bottom, top, near, far float32) {
	w := right - left
	h := top - bottom
	d := far - near
	m.Set(
		2/w, 0, 0, -(right+left)/w,
		0, 2/h, 0, -(top+bottom)/h,
		0, 0, -2/d, -(far+near)/d,
		0, 0, 0, 1,
	)
}

// Ortho returns a new orthographic projection matrix.
// See [Matrix4.SetOrthographic].
func Ortho(left, right, bottom, top, near, far float32) *Matrix4 {
	m := &Matrix4{}
	m.SetOrthographic(left, right, bottom, top, near, far)
	return m
}

// OpenGLToWGPU returns the matrix that remaps OpenGL clip space depth
// [-1, 1] to the WebGPU range [0, 1], leaving X, Y and W unchanged.
func OpenGLToWGPU() *Matrix4 {
	return Matrix4FromColumns(
		Vec4(1, 0, 0, 0),
		Vec4(0, 1, 0, 0),
		Vec4(0, 0, 0.5, 0),
		Vec4(0, 0, 0.5, 1),
	)
}

func (m *Matrix4) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&sb, "[%v %v %v %v]\n", m.At(row, 0), m.At(row, 1), m.At(row, 2), m.At(row, 3))
	}
	return sb.String()
}
