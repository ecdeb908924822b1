package extension

import "slices"

// builtinExtensionsNames lists the reserved extension names considered
// provided by the platform itself. Builtin extensions cannot be deactivated
// or removed by downstream tooling. This is static configuration, fixed for
// the lifetime of the process.
var builtinExtensionsNames = []string{
	"Sprite",
	"BuiltinObject",
	"BuiltinAudio",
	"BuiltinVariables",
	"BuiltinTime",
	"BuiltinMouse",
	"BuiltinKeyboard",
	"BuiltinJoystick",
	"BuiltinCamera",
	"BuiltinWindow",
	"BuiltinFile",
	"BuiltinNetwork",
	"BuiltinScene",
	"BuiltinAdvanced",
	"BuiltinCommonInstructions",
	"BuiltinCommonConversions",
	"BuiltinStringInstructions",
	"BuiltinMathematicalTools",
	"BuiltinExternalLayouts",
}

// BuiltinExtensionsNames returns the names of all extensions considered
// provided by the platform. The returned slice is a copy.
func BuiltinExtensionsNames() []string {
	return slices.Clone(builtinExtensionsNames)
}

// IsBuiltinExtension reports whether name is a reserved builtin extension
// name
func IsBuiltinExtension(name string) bool {
	return slices.Contains(builtinExtensionsNames, name)
}
