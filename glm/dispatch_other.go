//go:build !amd64 && !arm64

package glm

func init() {
	// Other architectures use the software fallback of math.FMA.
	constEval.Store(ConstEvalEnv())
	hasFMA = false
	currentName = "generic"
}
