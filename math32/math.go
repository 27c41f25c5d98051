// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and matrix package
// for 2D graphics on the GPU.
package math32

import (
	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Tolerance is the default tolerance used by the Equal methods.
const Tolerance = float32(1.0e-6)

// EqualTol returns whether a and b are within tol of each other,
// scaled relative to their magnitude when that exceeds 1.
func EqualTol(a, b, tol float32) bool {
	if a == b {
		return true
	}
	scale := Max(1, Max(Abs(a), Abs(b)))
	return Abs(a-b) <= tol*scale
}
