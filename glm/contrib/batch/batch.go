// Copyright 2025 go-glm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package batch

import (
	"fmt"

	"github.com/ajroetker/go-glm/glm"
	"github.com/ajroetker/go-glm/glm/contrib/workerpool"
)

const (
	// MinParallelItems is the slice length below which the Parallel kernels
	// run on the calling goroutine. A point transform is a handful of
	// multiply-adds, so a pool dispatch only pays off for thousands of them.
	MinParallelItems = 4096

	// MatBatch is the number of matrix products handed to a worker per grab
	// in ParallelMulMat4s.
	MatBatch = 64
)

// TransformPoints replaces each p in pts with m·(p, 1), dropping w.
func TransformPoints[T glm.Floats](m glm.Mat4[T], pts []glm.Vec3[T]) {
	for i := range pts {
		pts[i] = m.MulPoint(pts[i])
	}
}

// TransformVectors replaces each v in vs with m·(v, 0), dropping w.
// Translation does not affect directions.
func TransformVectors[T glm.Floats](m glm.Mat4[T], vs []glm.Vec3[T]) {
	for i := range vs {
		vs[i] = m.MulDir(vs[i])
	}
}

// RotateVectors rotates each v in vs by the unit quaternion q.
func RotateVectors[T glm.Floats](q glm.Quat[T], vs []glm.Vec3[T]) {
	for i := range vs {
		vs[i] = q.Rotate(vs[i])
	}
}

// NormalizeAll normalizes every vector in vs. Zero vectors become NaN.
func NormalizeAll[T glm.Floats](vs []glm.Vec3[T]) {
	for i := range vs {
		vs[i] = vs[i].Normalize()
	}
}

// MulMat4s stores a[i]·b[i] in dst[i]. The three slices must have the same
// length; dst may alias a or b.
func MulMat4s[T glm.Floats](dst, a, b []glm.Mat4[T]) {
	checkLens(len(dst), len(a), len(b))
	for i := range dst {
		dst[i] = a[i].Mul(b[i])
	}
}

func checkLens(dst, a, b int) {
	if a != dst || b != dst {
		panic(fmt.Sprintf("batch: length mismatch: dst=%d a=%d b=%d", dst, a, b))
	}
}

// parallelApply runs fn over [0, n) on pool, or inline when pool is nil or
// n is below MinParallelItems.
func parallelApply(pool *workerpool.Pool, n int, fn func(start, end int)) {
	if pool == nil || n < MinParallelItems {
		fn(0, n)
		return
	}
	pool.ParallelFor(n, MinParallelItems/4, fn)
}

// ParallelTransformPoints is TransformPoints split over pool.
func ParallelTransformPoints[T glm.Floats](pool *workerpool.Pool, m glm.Mat4[T], pts []glm.Vec3[T]) {
	parallelApply(pool, len(pts), func(start, end int) {
		TransformPoints(m, pts[start:end])
	})
}

// ParallelTransformVectors is TransformVectors split over pool.
func ParallelTransformVectors[T glm.Floats](pool *workerpool.Pool, m glm.Mat4[T], vs []glm.Vec3[T]) {
	parallelApply(pool, len(vs), func(start, end int) {
		TransformVectors(m, vs[start:end])
	})
}

// ParallelRotateVectors is RotateVectors split over pool.
func ParallelRotateVectors[T glm.Floats](pool *workerpool.Pool, q glm.Quat[T], vs []glm.Vec3[T]) {
	parallelApply(pool, len(vs), func(start, end int) {
		RotateVectors(q, vs[start:end])
	})
}

// ParallelNormalizeAll is NormalizeAll split over pool.
func ParallelNormalizeAll[T glm.Floats](pool *workerpool.Pool, vs []glm.Vec3[T]) {
	parallelApply(pool, len(vs), func(start, end int) {
		NormalizeAll(vs[start:end])
	})
}

// ParallelMulMat4s is MulMat4s split over pool in batches of MatBatch.
// Matrix products are heavier than point transforms, so any non-nil pool
// is used once there is more than one batch.
func ParallelMulMat4s[T glm.Floats](pool *workerpool.Pool, dst, a, b []glm.Mat4[T]) {
	checkLens(len(dst), len(a), len(b))
	if pool == nil || len(dst) <= MatBatch {
		MulMat4s(dst, a, b)
		return
	}
	pool.ParallelForBatched(len(dst), MatBatch, func(start, end int) {
		MulMat4s(dst[start:end], a[start:end], b[start:end])
	})
}
