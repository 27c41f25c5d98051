// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// IsEqualTol returns whether this vector is equal to the other
// within the given tolerance.
func (v Vector2) IsEqualTol(other Vector2, tol float32) bool {
	return EqualTol(v.X, other.X, tol) && EqualTol(v.Y, other.Y, tol)
}
