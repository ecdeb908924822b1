package extension

import (
	"math/bits"
	"runtime"
)

// CoreVersion is the version of the platform core an extension is built
// against, recorded in its compilation stamp for compatibility diagnostics.
const CoreVersion = "1.0.0"

// CompilationInfo captures the toolchain and version context an extension was
// built against. It is a diagnostic stamp only: apart from the RuntimeOnly
// flag, which controls how much editor metadata declarations populate, the
// core never branches on it.
type CompilationInfo struct {
	// InformationCompleted is true once the stamp was filled by
	// CompleteCompilationInformation
	InformationCompleted bool `json:"informationCompleted"`

	// RuntimeOnly is true if the extension targets a runtime without an
	// editor; editor-facing metadata is not populated for such extensions
	RuntimeOnly bool `json:"runtimeOnly"`

	// GoVersion is the Go toolchain version the core was built with
	GoVersion string `json:"goVersion"`

	// CoreVersion is the platform core version
	CoreVersion string `json:"coreVersion"`

	// PointerSize is the pointer size in bytes of the build target
	PointerSize int `json:"pointerSize"`
}

// CompleteCompilationInformation fills a compilation stamp from the running
// toolchain. Every extension gets its stamp from this one routine so stamps
// are comparable across extensions.
func CompleteCompilationInformation(runtimeOnly bool) CompilationInfo {
	return CompilationInfo{
		InformationCompleted: true,
		RuntimeOnly:          runtimeOnly,
		GoVersion:            runtime.Version(),
		CoreVersion:          CoreVersion,
		PointerSize:          bits.UintSize / 8,
	}
}
