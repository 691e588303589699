//go:build arm64

package glm

import "golang.org/x/sys/cpu"

func init() {
	constEval.Store(ConstEvalEnv())

	// FMADD is part of the ARMv8-A base FP instruction set. ASIMD is always
	// present on ARMv8+, we check it for consistency with the FP unit.
	hasFMA = cpu.ARM64.HasFP || cpu.ARM64.HasASIMD
	currentName = "arm64"
}
