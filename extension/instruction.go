package extension

// ParameterMetadata describes a single parameter of an instruction or
// expression declaration.
type ParameterMetadata struct {
	Type        string `json:"type"`                // Parameter type ("expression", "object", "string", ...)
	Description string `json:"description"`         // Human-readable description shown in the editor
	ExtraInfo   string `json:"extraInfo,omitempty"` // Kind-specific extra information (e.g. object type filter)
	Optional    bool   `json:"optional"`            // True if the parameter may be omitted by the author
	CodeOnly    bool   `json:"codeOnly"`            // True if the parameter is injected by the generator, not the author
}

// InstructionCodeGenerator is the optional hook an extension may attach to an
// instruction so the external code generator produces custom output for it.
// The core only checks its presence; it never invokes it.
type InstructionCodeGenerator func(instruction Instruction) (string, error)

// InstructionMetadata describes a condition or action declared by an
// extension: display strings for the editor, the sentence template used to
// render the instruction in block form, and the hooks the code generator
// needs. Records are created by Extension.AddCondition/AddAction and
// configured through the fluent setters on the returned reference.
type InstructionMetadata struct {
	typeName          string // Namespaced identifier, e.g. "Physics::ApplyForce"
	displayName       string
	description       string
	sentence          string
	group             string
	iconFilename      string
	smallIconFilename string
	helpPath          string
	hidden            bool

	parameters        []ParameterMetadata
	functionName      string
	codeGenerator     InstructionCodeGenerator
	ownerObjectType   string
	ownerBehaviorType string
}

// Type returns the namespaced identifier of the instruction
func (m *InstructionMetadata) Type() string { return m.typeName }

// DisplayName returns the user friendly name shown in the editor
func (m *InstructionMetadata) DisplayName() string { return m.displayName }

// Description returns the user friendly description of the instruction
func (m *InstructionMetadata) Description() string { return m.description }

// Sentence returns the sentence template used to render the instruction
func (m *InstructionMetadata) Sentence() string { return m.sentence }

// Group returns the editor group the instruction is listed under
func (m *InstructionMetadata) Group() string { return m.group }

// IconFilename returns the icon of the instruction
func (m *InstructionMetadata) IconFilename() string { return m.iconFilename }

// SmallIconFilename returns the small icon of the instruction
func (m *InstructionMetadata) SmallIconFilename() string { return m.smallIconFilename }

// HelpPath returns the path to the instruction help, relative to the
// documentation root
func (m *InstructionMetadata) HelpPath() string { return m.helpPath }

// IsHidden reports whether the instruction is hidden from the editor
func (m *InstructionMetadata) IsHidden() bool { return m.hidden }

// FunctionName returns the name of the implementation function, if any
func (m *InstructionMetadata) FunctionName() string { return m.functionName }

// CodeGenerator returns the custom code generation hook, if any
func (m *InstructionMetadata) CodeGenerator() InstructionCodeGenerator { return m.codeGenerator }

// OwnerObject returns the object type this instruction is bound to, or an
// empty string for a free instruction
func (m *InstructionMetadata) OwnerObject() string { return m.ownerObjectType }

// OwnerBehavior returns the behavior type this instruction is bound to, or an
// empty string
func (m *InstructionMetadata) OwnerBehavior() string { return m.ownerBehaviorType }

// Parameters returns a copy of the ordered parameter list
func (m *InstructionMetadata) Parameters() []ParameterMetadata {
	result := make([]ParameterMetadata, len(m.parameters))
	copy(result, m.parameters)
	return result
}

// IsImplemented reports whether the instruction has either a named
// implementation function or a custom code generation hook. Instructions
// lacking both are documentation stubs and are removed by
// Extension.StripUnimplementedInstructionsAndExpressions.
func (m *InstructionMetadata) IsImplemented() bool {
	return m.functionName != "" || m.codeGenerator != nil
}

// SetFunctionName sets the name of the implementation function called when
// the instruction runs
func (m *InstructionMetadata) SetFunctionName(functionName string) *InstructionMetadata {
	m.functionName = functionName
	return m
}

// SetCustomCodeGenerator attaches a custom code generation hook
func (m *InstructionMetadata) SetCustomCodeGenerator(generator InstructionCodeGenerator) *InstructionMetadata {
	m.codeGenerator = generator
	return m
}

// SetGroup changes the editor group the instruction is listed under
func (m *InstructionMetadata) SetGroup(group string) *InstructionMetadata {
	m.group = group
	return m
}

// SetHelpPath sets the path to the instruction help, relative to the
// documentation root
func (m *InstructionMetadata) SetHelpPath(helpPath string) *InstructionMetadata {
	m.helpPath = helpPath
	return m
}

// SetHidden hides the instruction from the editor while keeping it usable by
// already-authored projects
func (m *InstructionMetadata) SetHidden() *InstructionMetadata {
	m.hidden = true
	return m
}

// SetOwnerObject binds the instruction to an object type so it only appears
// for instances of that type
func (m *InstructionMetadata) SetOwnerObject(objectType string) *InstructionMetadata {
	m.ownerObjectType = objectType
	return m
}

// SetOwnerBehavior binds the instruction to a behavior type
func (m *InstructionMetadata) SetOwnerBehavior(behaviorType string) *InstructionMetadata {
	m.ownerBehaviorType = behaviorType
	return m
}

// AddParameter appends an author-visible parameter to the instruction
func (m *InstructionMetadata) AddParameter(parameterType, description string, optional bool) *InstructionMetadata {
	m.parameters = append(m.parameters, ParameterMetadata{
		Type:        parameterType,
		Description: description,
		Optional:    optional,
	})
	return m
}

// AddCodeOnlyParameter appends a parameter that is filled in by the code
// generator instead of the author
func (m *InstructionMetadata) AddCodeOnlyParameter(parameterType, extraInfo string) *InstructionMetadata {
	m.parameters = append(m.parameters, ParameterMetadata{
		Type:      parameterType,
		ExtraInfo: extraInfo,
		CodeOnly:  true,
	})
	return m
}
