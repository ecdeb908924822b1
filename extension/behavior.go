package extension

// Behavior is the contract runtime behavior implementations must satisfy.
// A behavior is a reusable capability attached to an object type; its
// internals are external collaborators the core never inspects.
type Behavior interface {
	// TypeName returns the namespaced behavior type this instance belongs to
	TypeName() string
}

// BehaviorsSharedData is the contract for data shared across all instances of
// one behavior type within a single context (e.g. one scene).
type BehaviorsSharedData interface {
	// TypeName returns the namespaced behavior type this data belongs to
	TypeName() string
}

// BehaviorFactory produces a newly owned behavior instance. A nil factory is
// the empty capability returned for unknown behavior types.
type BehaviorFactory func() Behavior

// SharedDataFactory produces newly owned shared data for a behavior type.
// Behavior types without shared data leave it nil.
type SharedDataFactory func() BehaviorsSharedData

// BehaviorMetadata describes a behavior type declared by an extension,
// including the factory capabilities used to construct instances and,
// optionally, their shared data.
type BehaviorMetadata struct {
	typeName     string
	displayName  string
	defaultName  string
	description  string
	group        string
	iconFilename string
	helpPath     string

	factory           BehaviorFactory
	sharedDataFactory SharedDataFactory
}

// Type returns the namespaced identifier of the behavior type
func (m *BehaviorMetadata) Type() string { return m.typeName }

// DisplayName returns the user friendly name shown in the editor
func (m *BehaviorMetadata) DisplayName() string { return m.displayName }

// DefaultName returns the default name given to the behavior when it is
// attached to an object
func (m *BehaviorMetadata) DefaultName() string { return m.defaultName }

// Description returns the user friendly description of the behavior type
func (m *BehaviorMetadata) Description() string { return m.description }

// Group returns the editor group the behavior is listed under
func (m *BehaviorMetadata) Group() string { return m.group }

// IconFilename returns the 24x24 icon of the behavior type
func (m *BehaviorMetadata) IconFilename() string { return m.iconFilename }

// HelpPath returns the path to the behavior help, relative to the
// documentation root
func (m *BehaviorMetadata) HelpPath() string { return m.helpPath }

// Factory returns the behavior instance factory. The sentinel record returns
// nil.
func (m *BehaviorMetadata) Factory() BehaviorFactory { return m.factory }

// SharedDataFactory returns the shared-data factory, or nil if the behavior
// type declares no shared data.
func (m *BehaviorMetadata) SharedDataFactory() SharedDataFactory { return m.sharedDataFactory }

// SetHelpPath sets the path to the behavior help, relative to the
// documentation root
func (m *BehaviorMetadata) SetHelpPath(helpPath string) *BehaviorMetadata {
	m.helpPath = helpPath
	return m
}
