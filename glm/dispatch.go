package glm

import (
	"os"
	"strconv"
	"sync/atomic"
)

// EvalPath selects which implementation the scalar math functions use.
type EvalPath int

const (
	// EvalRuntime uses the host math package. Results match the platform's
	// standard library to the last bit.
	EvalRuntime EvalPath = iota

	// EvalConst uses the portable pure-Go kernels. Results are identical on
	// every platform and agree with EvalRuntime within Tolerance.
	EvalConst
)

// String returns a human-readable name for the evaluation path.
func (p EvalPath) String() string {
	switch p {
	case EvalRuntime:
		return "runtime"
	case EvalConst:
		return "const"
	default:
		return "unknown"
	}
}

// constEval is true when the constant-evaluation path is active.
// Set by init() in dispatch_*.go files and by SetEvalPath.
var constEval atomic.Bool

// hasFMA reports hardware fused multiply-add.
// Set by init() in dispatch_*.go files.
var hasFMA bool

// currentName is the human-readable name of the runtime target, e.g.
// "amd64-fma". Set by init() in dispatch_*.go files.
var currentName string

// ConstEval reports whether the constant-evaluation path is active.
func ConstEval() bool {
	return constEval.Load()
}

// CurrentEvalPath returns the active evaluation path.
func CurrentEvalPath() EvalPath {
	if constEval.Load() {
		return EvalConst
	}
	return EvalRuntime
}

// SetEvalPath switches the evaluation path for all subsequent calls and
// returns the previous one. It is safe to call concurrently, but calls that
// are already running finish on the path they started with.
func SetEvalPath(p EvalPath) EvalPath {
	prev := constEval.Swap(p == EvalConst)
	if prev {
		return EvalConst
	}
	return EvalRuntime
}

// HasFMA returns true if the CPU has a fused multiply-add instruction, which
// the runtime path of Fma uses through math.FMA.
func HasFMA() bool {
	return hasFMA
}

// CurrentName returns a human-readable name for the runtime target.
// For example: "amd64-fma", "arm64", "generic".
func CurrentName() string {
	return currentName
}

// ConstEvalEnv checks if the GLM_CONSTEVAL environment variable is set.
// When set, the scalar math functions use the constant-evaluation path
// regardless of the platform. This is useful for reproducing results across
// machines.
func ConstEvalEnv() bool {
	val := os.Getenv("GLM_CONSTEVAL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
