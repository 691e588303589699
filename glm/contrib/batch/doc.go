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

// Package batch applies glm transforms to slices of vectors and matrices.
//
// Every kernel works in place (or into a caller-provided dst) and allocates
// nothing. Each has a Parallel twin that takes a *workerpool.Pool and
// splits the slice into contiguous ranges; a nil pool or a slice shorter
// than MinParallelItems runs sequentially. Results are identical to calling
// the glm method on each element, parallel or not.
package batch
