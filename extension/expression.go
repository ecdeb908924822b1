package extension

// ExpressionCodeGenerator is the optional hook an extension may attach to an
// expression so the external code generator produces custom output for it.
// It receives the already-generated argument expressions. The core only
// checks its presence; it never invokes it.
type ExpressionCodeGenerator func(arguments []string) (string, error)

// ExpressionMetadata describes a value-producing computation declared by an
// extension, usable inside instructions. An expression produces either a
// numeric value or a string, depending on which mapping it was declared in
// (AddExpression vs AddStrExpression).
type ExpressionMetadata struct {
	typeName          string
	displayName       string
	description       string
	group             string
	smallIconFilename string
	helpPath          string
	hidden            bool
	isString          bool

	parameters        []ParameterMetadata
	functionName      string
	codeGenerator     ExpressionCodeGenerator
	ownerObjectType   string
	ownerBehaviorType string
}

// Type returns the namespaced identifier of the expression
func (m *ExpressionMetadata) Type() string { return m.typeName }

// DisplayName returns the user friendly name shown in the editor
func (m *ExpressionMetadata) DisplayName() string { return m.displayName }

// Description returns the user friendly description of the expression
func (m *ExpressionMetadata) Description() string { return m.description }

// Group returns the editor group the expression is listed under
func (m *ExpressionMetadata) Group() string { return m.group }

// SmallIconFilename returns the small icon of the expression
func (m *ExpressionMetadata) SmallIconFilename() string { return m.smallIconFilename }

// HelpPath returns the path to the expression help, relative to the
// documentation root
func (m *ExpressionMetadata) HelpPath() string { return m.helpPath }

// IsHidden reports whether the expression is hidden from the editor
func (m *ExpressionMetadata) IsHidden() bool { return m.hidden }

// IsString reports whether the expression produces a string instead of a
// numeric value
func (m *ExpressionMetadata) IsString() bool { return m.isString }

// FunctionName returns the name of the implementation function, if any
func (m *ExpressionMetadata) FunctionName() string { return m.functionName }

// CodeGenerator returns the custom code generation hook, if any
func (m *ExpressionMetadata) CodeGenerator() ExpressionCodeGenerator { return m.codeGenerator }

// OwnerObject returns the object type this expression is bound to, or an
// empty string for a free expression
func (m *ExpressionMetadata) OwnerObject() string { return m.ownerObjectType }

// OwnerBehavior returns the behavior type this expression is bound to, or an
// empty string
func (m *ExpressionMetadata) OwnerBehavior() string { return m.ownerBehaviorType }

// Parameters returns a copy of the ordered parameter list
func (m *ExpressionMetadata) Parameters() []ParameterMetadata {
	result := make([]ParameterMetadata, len(m.parameters))
	copy(result, m.parameters)
	return result
}

// IsImplemented reports whether the expression has either a named
// implementation function or a custom code generation hook
func (m *ExpressionMetadata) IsImplemented() bool {
	return m.functionName != "" || m.codeGenerator != nil
}

// SetFunctionName sets the name of the implementation function evaluated when
// the expression is computed
func (m *ExpressionMetadata) SetFunctionName(functionName string) *ExpressionMetadata {
	m.functionName = functionName
	return m
}

// SetCustomCodeGenerator attaches a custom code generation hook
func (m *ExpressionMetadata) SetCustomCodeGenerator(generator ExpressionCodeGenerator) *ExpressionMetadata {
	m.codeGenerator = generator
	return m
}

// SetGroup changes the editor group the expression is listed under
func (m *ExpressionMetadata) SetGroup(group string) *ExpressionMetadata {
	m.group = group
	return m
}

// SetHelpPath sets the path to the expression help, relative to the
// documentation root
func (m *ExpressionMetadata) SetHelpPath(helpPath string) *ExpressionMetadata {
	m.helpPath = helpPath
	return m
}

// SetHidden hides the expression from the editor
func (m *ExpressionMetadata) SetHidden() *ExpressionMetadata {
	m.hidden = true
	return m
}

// SetOwnerObject binds the expression to an object type
func (m *ExpressionMetadata) SetOwnerObject(objectType string) *ExpressionMetadata {
	m.ownerObjectType = objectType
	return m
}

// SetOwnerBehavior binds the expression to a behavior type
func (m *ExpressionMetadata) SetOwnerBehavior(behaviorType string) *ExpressionMetadata {
	m.ownerBehaviorType = behaviorType
	return m
}

// AddParameter appends an author-visible parameter to the expression
func (m *ExpressionMetadata) AddParameter(parameterType, description string, optional bool) *ExpressionMetadata {
	m.parameters = append(m.parameters, ParameterMetadata{
		Type:        parameterType,
		Description: description,
		Optional:    optional,
	})
	return m
}

// AddCodeOnlyParameter appends a parameter that is filled in by the code
// generator instead of the author
func (m *ExpressionMetadata) AddCodeOnlyParameter(parameterType, extraInfo string) *ExpressionMetadata {
	m.parameters = append(m.parameters, ParameterMetadata{
		Type:      parameterType,
		ExtraInfo: extraInfo,
		CodeOnly:  true,
	})
	return m
}
