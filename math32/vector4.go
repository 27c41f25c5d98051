// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
// It also carries RGBA colors in the vertex data.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4FromVector2 returns a point in homogeneous coordinates
// with Z = 0 and W = 1.
func Vector4FromVector2(v Vector2) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: 0, W: 1}
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// PerspDiv returns the X and Y components divided by W.
func (v Vector4) PerspDiv() Vector2 {
	return Vector2{v.X / v.W, v.Y / v.W}
}

// IsEqualTol returns whether this vector is equal to the other
// within the given tolerance.
func (v Vector4) IsEqualTol(other Vector4, tol float32) bool {
	return EqualTol(v.X, other.X, tol) && EqualTol(v.Y, other.Y, tol) &&
		EqualTol(v.Z, other.Z, tol) && EqualTol(v.W, other.W, tol)
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector4) ToSlice(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
	array[offset+3] = v.W
}
