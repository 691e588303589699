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

// Command glmgen generates the fixed-arity vector types of package glm.
//
// Usage:
//
//	glmgen -output ./glm -pkg glm -arities 2,3,4
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/glmgen -output . -pkg glm -arities 2,3,4
//
// For every arity N the generator writes vecN_gen.go containing VecN[T],
// BVecN and their methods. -prefix changes the type-name stem; it is
// title-cased, so -prefix point writes point3_gen.go with Point3 and BPoint3. The method bodies are loops over the components,
// so all arities share one template and differ only in names.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	packageOut = flag.String("pkg", "glm", "Output package name")
	prefix     = flag.String("prefix", DefaultPrefix, "Type-name stem, title-cased (vec gives Vec2, BVec2)")
	arities    = flag.String("arities", "2,3,4", "Comma-separated vector arities ("+strconv.Itoa(minArity)+"-"+strconv.Itoa(maxArity)+")")
)

func main() {
	flag.Parse()

	arityList, err := parseArities(*arities)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir:  *outputDir,
		PackageOut: *packageOut,
		Prefix:     *prefix,
		Arities:    arityList,
	}
	files, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s\n", strings.Join(files, ", "))
}

func parseArities(s string) ([]int, error) {
	var result []int
	seen := make(map[int]bool)
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid arity %q: %w", p, err)
		}
		if n < minArity || n > maxArity {
			return nil, fmt.Errorf("arity %d out of range [%d, %d]", n, minArity, maxArity)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		result = append(result, n)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no arities specified")
	}
	return result, nil
}
