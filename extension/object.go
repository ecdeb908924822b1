package extension

// Object is the minimal contract runtime object implementations must satisfy
// for the registry to construct and clone them. Concrete object types are
// external collaborators; the core never inspects them beyond this interface.
type Object interface {
	// Name returns the instance name of the object
	Name() string

	// SetName renames the object instance
	SetName(name string)

	// Clone returns a newly owned deep copy of the object
	Clone() Object
}

// CreateFunc creates a newly owned object instance with the given instance
// name. A nil CreateFunc is the empty capability returned for unknown object
// types.
type CreateFunc func(name string) Object

// objectPointer constrains a pointer to a concrete object variant
type objectPointer[T any] interface {
	*T
	Object
}

// NewCreator returns a CreateFunc constructing a fresh instance of the
// concrete object variant T for each requested instance name. This is the
// generic counterpart of declaring an object from a prototype instance:
//
//	ext.AddObject("Sprite", "Sprite", "Animated object", "sprite.png",
//	    extension.NewCreator[SpriteObject]())
func NewCreator[T any, P objectPointer[T]]() CreateFunc {
	return func(name string) Object {
		instance := P(new(T))
		instance.SetName(name)
		return instance
	}
}

// ObjectMetadata describes an object type declared by an extension, including
// the factory capability used to construct instances of it.
type ObjectMetadata struct {
	typeName     string
	displayName  string
	description  string
	iconFilename string
	helpPath     string
	hidden       bool

	createFunc CreateFunc
}

// Type returns the namespaced identifier of the object type
func (m *ObjectMetadata) Type() string { return m.typeName }

// DisplayName returns the user friendly name shown in the editor
func (m *ObjectMetadata) DisplayName() string { return m.displayName }

// Description returns the user friendly description of the object type
func (m *ObjectMetadata) Description() string { return m.description }

// IconFilename returns the 24x24 icon of the object type
func (m *ObjectMetadata) IconFilename() string { return m.iconFilename }

// HelpPath returns the path to the object help, relative to the
// documentation root
func (m *ObjectMetadata) HelpPath() string { return m.helpPath }

// IsHidden reports whether the object type is hidden from the editor
func (m *ObjectMetadata) IsHidden() bool { return m.hidden }

// CreateFunc returns the factory capability for this object type.
// The sentinel record returns nil.
func (m *ObjectMetadata) CreateFunc() CreateFunc { return m.createFunc }

// SetHelpPath sets the path to the object help, relative to the
// documentation root
func (m *ObjectMetadata) SetHelpPath(helpPath string) *ObjectMetadata {
	m.helpPath = helpPath
	return m
}

// SetHidden hides the object type from the editor
func (m *ObjectMetadata) SetHidden() *ObjectMetadata {
	m.hidden = true
	return m
}
