//go:build amd64

package glm

import "golang.org/x/sys/cpu"

func init() {
	constEval.Store(ConstEvalEnv())

	// FMA3 arrived with Haswell; AVX is a prerequisite for the VEX encoding.
	hasFMA = cpu.X86.HasAVX && cpu.X86.HasFMA
	if hasFMA {
		currentName = "amd64-fma"
	} else {
		currentName = "amd64"
	}
}
