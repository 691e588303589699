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

package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

const (
	minArity = 2
	maxArity = 4

	// DefaultPrefix is the type-name stem: "vec" yields Vec3 and BVec3.
	DefaultPrefix = "vec"
)

// componentNames lists the storage order of vector components.
var componentNames = [maxArity]string{"x", "y", "z", "w"}

//go:embed vec.tmpl
var vecTemplateText string

var vecTemplate = template.Must(template.New("vec").Parse(vecTemplateText))

// Component describes one vector lane.
type Component struct {
	Index int
	Lower string // "x"
	Name  string // "X", the accessor method name
}

// VecData is the template input for one arity.
type VecData struct {
	Pkg        string
	N          int
	Type       string // "Vec3"
	BType      string // "BVec3"
	Params     string // "x, y, z"
	Splat      string // "s, s, s"
	Order      string
	Components []Component
}

// Generator renders one file per arity.
type Generator struct {
	OutputDir  string
	PackageOut string
	Prefix     string // type-name stem, DefaultPrefix when empty
	Arities    []int
}

// typeStem title-cases prefix into the exported type-name stem, so "vec"
// and "VEC" both give "Vec".
func typeStem(prefix string) (string, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	for _, r := range prefix {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return "", fmt.Errorf("type prefix %q: only ASCII letters are allowed", prefix)
		}
	}
	return cases.Title(language.English).String(prefix), nil
}

// newVecData builds the template input for arity n.
func newVecData(pkg, prefix string, n int) (VecData, error) {
	if n < minArity || n > maxArity {
		return VecData{}, fmt.Errorf("arity %d out of range [%d, %d]", n, minArity, maxArity)
	}
	stem, err := typeStem(prefix)
	if err != nil {
		return VecData{}, err
	}
	title := cases.Title(language.English)
	lower := componentNames[:n]
	comps := make([]Component, n)
	splat := make([]string, n)
	for i, c := range lower {
		comps[i] = Component{Index: i, Lower: c, Name: title.String(c)}
		splat[i] = "s"
	}
	return VecData{
		Pkg:        pkg,
		N:          n,
		Type:       fmt.Sprintf("%s%d", stem, n),
		BType:      fmt.Sprintf("B%s%d", stem, n),
		Params:     strings.Join(lower, ", "),
		Splat:      strings.Join(splat, ", "),
		Order:      strings.Join(lower, ", "),
		Components: comps,
	}, nil
}

// Render returns the formatted source for arity n. filename is only used by
// the import fixer to resolve the package context.
func Render(pkg, prefix string, n int, filename string) ([]byte, error) {
	data, err := newVecData(pkg, prefix, n)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := vecTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", data.Type, err)
	}
	out, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		// Return the unformatted source so the caller can inspect it.
		return buf.Bytes(), fmt.Errorf("formatting %s: %w", data.Type, err)
	}
	return out, nil
}

// Run writes <prefix>N_gen.go for every configured arity and returns the
// paths written.
func (g *Generator) Run() ([]string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	prefix := g.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	var written []string
	for _, n := range g.Arities {
		filename := filepath.Join(g.OutputDir, fmt.Sprintf("%s%d_gen.go", strings.ToLower(prefix), n))
		src, err := Render(g.PackageOut, prefix, n, filename)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(filename, src, 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", filename, err)
		}
		written = append(written, filename)
	}
	return written, nil
}
